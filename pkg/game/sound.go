package game

// SoundPlayer 模拟核心依赖的音效接口
// id 为 config.Sound* 常量；播放失败由实现自行记录，不影响模拟
type SoundPlayer interface {
	Play(id string, volume float64)
	Stop(id string)
}

// NopSoundPlayer 不发出任何声音，用于测试和无音频环境
type NopSoundPlayer struct{}

// Play 忽略播放请求
func (NopSoundPlayer) Play(string, float64) {}

// Stop 忽略停止请求
func (NopSoundPlayer) Stop(string) {}
