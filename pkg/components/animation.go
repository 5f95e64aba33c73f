package components

// AnimationComponent 简单的循环帧动画状态（纯表现，不影响模拟）
type AnimationComponent struct {
	Frame      int // 当前帧
	FrameCount int // 总帧数
	FrameTicks int // 每帧持续的渲染帧数
	Elapsed    int // 当前帧已持续的渲染帧数
	Moving     bool
}
