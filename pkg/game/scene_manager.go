package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按起始关卡编号创建游戏场景，避免 game 包依赖 scenes 包
type SceneFactory func(level int) (Scene, error)

// SceneManager manages which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene. The previous scene is closed if it
// implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	sm.closeCurrent()
	sm.currentScene = scene
}

// LoadLevel 通过工厂创建从指定关卡开始的场景并切换过去
// 创建失败时保留当前场景
func (sm *SceneManager) LoadLevel(level int) error {
	log.Printf("[SceneManager] Loading level %d", level)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(level)
	if err != nil {
		return fmt.Errorf("failed to create scene for level %d: %w", level, err)
	}
	sm.SwitchTo(newScene)
	return nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 关闭当前场景
func (sm *SceneManager) Close() {
	sm.closeCurrent()
	sm.currentScene = nil
}

func (sm *SceneManager) closeCurrent() {
	if c, ok := sm.currentScene.(Closer); ok {
		c.Close()
	}
}
