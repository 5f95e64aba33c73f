package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one rendered frame.
	// deltaTime is the wall time since the last update in seconds.
	// Returning ebiten.Termination ends the game loop normally.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景被替换或窗口关闭时调用
// 用于停止音乐、保存设置等收尾工作
type Closer interface {
	Close()
}
