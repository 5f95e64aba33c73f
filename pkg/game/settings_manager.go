package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 用户设置
// 只保存音量与显示偏好，游戏进度不持久化
type GameSettings struct {
	// 音量倍率，与每个音效自身的固定音量相乘
	MusicVolume    float64 `yaml:"musicVolume"`   // 背景音乐倍率 0.0 ~ 1.0
	EffectsVolume  float64 `yaml:"effectsVolume"` // 音效倍率 0.0 ~ 1.0
	MusicEnabled   bool    `yaml:"musicEnabled"`
	EffectsEnabled bool    `yaml:"effectsEnabled"`

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowHints  bool `yaml:"showHints"`  // 是否显示能力提示
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:    1.0,
		EffectsVolume:  1.0,
		MusicEnabled:   true,
		EffectsEnabled: true,
		Fullscreen:     false,
		ShowHints:      true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *GameSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "chronos"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败只记录日志并回退到默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或尚无存档时使用默认设置。
// 文件中的音量超出范围时会被截断。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 以默认值为底，旧版本存档缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.EffectsVolume = clampVolume(loaded.EffectsVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (music %.2f, effects %.2f)", loaded.MusicVolume, loaded.EffectsVolume)
	return nil
}

// Save 保存设置到 gdata
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐倍率，截断到 0.0 ~ 1.0
// 仅修改内存，需调用 Save() 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowHints 设置是否显示能力提示
func (sm *SettingsManager) SetShowHints(enabled bool) {
	sm.settings.ShowHints = enabled
}

// clampVolume 将音量限制在 0.0 ~ 1.0
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
