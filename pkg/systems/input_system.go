package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 一个渲染帧内的输入
// Left/Right 是按住状态，其余字段都是本帧发生的边沿事件
type Input struct {
	Left  bool
	Right bool
	Jump  bool

	SlowPressed  bool
	SlowReleased bool
	StopPressed  bool
	StopReleased bool

	Recall    bool
	Click     bool
	MuteMusic bool
}

// Direction 返回水平移动方向：-1 左，1 右，0 不动（两键同时按住也不动）
func (in Input) Direction() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	default:
		return 0
	}
}

// 键位绑定
const (
	KeyLeft   = ebiten.KeyA
	KeyRight  = ebiten.KeyD
	KeyJump   = ebiten.KeyW
	KeySlow   = ebiten.KeyShiftLeft
	KeyStop   = ebiten.KeySpace
	KeyRecall = ebiten.KeyQ
	KeyMute   = ebiten.KeyEscape
)

// PollInput 从 ebiten 读取本帧的键盘和鼠标状态
// 必须在 ebiten.Game.Update 中调用
func PollInput() Input {
	return Input{
		Left:  ebiten.IsKeyPressed(KeyLeft),
		Right: ebiten.IsKeyPressed(KeyRight),
		Jump:  inpututil.IsKeyJustPressed(KeyJump),

		SlowPressed:  inpututil.IsKeyJustPressed(KeySlow),
		SlowReleased: inpututil.IsKeyJustReleased(KeySlow),
		StopPressed:  inpututil.IsKeyJustPressed(KeyStop),
		StopReleased: inpututil.IsKeyJustReleased(KeyStop),

		Recall:    inpututil.IsKeyJustPressed(KeyRecall),
		Click:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MuteMusic: inpututil.IsKeyJustPressed(KeyMute),
	}
}
