package game

import (
	"log"

	"github.com/decker502/chronos/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器，实现 SoundPlayer
//
// 每个音效ID缓存一个播放器，再次播放时从头开始。
// 背景音乐循环播放，同一时间只有一首。
// 实际音量 = 调用方给出的音量 × 设置中的倍率。
// 资源缺失时静默跳过，不影响游戏运行。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil，此时倍率为 1
	players         map[string]*audio.Player
	paths           map[string]string // 音效ID -> 资源路径
	currentMusicID  string
	musicVolume     float64 // 当前背景音乐的基础音量
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
		paths:           config.SoundFiles,
	}
}

// isMusic 背景音乐与音效分别受不同的开关和倍率控制
func isMusic(id string) bool {
	return id == config.SoundBackground
}

// Play 播放音效或背景音乐
// 背景音乐已在播放时不会重新开始
func (am *AudioManager) Play(id string, volume float64) {
	music := isMusic(id)
	if !am.enabled(music) {
		return
	}

	if music && am.currentMusicID == id {
		if p := am.players[id]; p != nil && p.IsPlaying() {
			return
		}
	}

	player := am.getPlayer(id, music)
	if player == nil {
		return
	}

	player.SetVolume(clampVolume(volume * am.multiplier(music)))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", id, err)
	}
	player.Play()

	if music {
		am.currentMusicID = id
		am.musicVolume = volume
		log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", id, player.Volume())
	}
}

// Stop 停止指定音效或背景音乐
func (am *AudioManager) Stop(id string) {
	player, ok := am.players[id]
	if !ok {
		return
	}
	player.Pause()
	if am.currentMusicID == id {
		am.currentMusicID = ""
	}
}

// StopAll 停止所有正在播放的声音
func (am *AudioManager) StopAll() {
	for id := range am.players {
		am.Stop(id)
	}
}

// RefreshMusicVolume 按当前设置倍率重新计算正在播放的背景音乐音量
func (am *AudioManager) RefreshMusicVolume() {
	if am.currentMusicID == "" {
		return
	}
	player := am.players[am.currentMusicID]
	if player == nil {
		return
	}
	player.SetVolume(clampVolume(am.musicVolume * am.multiplier(true)))
}

// getPlayer 获取或加载播放器，加载失败返回 nil
func (am *AudioManager) getPlayer(id string, loop bool) *audio.Player {
	if player, exists := am.players[id]; exists {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}

	path, ok := am.paths[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound id: %s", id)
		return nil
	}

	player, err := am.resourceManager.NewAudioPlayer(path, loop)
	if err != nil {
		return nil
	}
	am.players[id] = player
	return player
}

func (am *AudioManager) enabled(music bool) bool {
	if am.settingsManager == nil {
		return true
	}
	settings := am.settingsManager.GetSettings()
	if music {
		return settings.MusicEnabled
	}
	return settings.EffectsEnabled
}

func (am *AudioManager) multiplier(music bool) float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	settings := am.settingsManager.GetSettings()
	if music {
		return settings.MusicVolume
	}
	return settings.EffectsVolume
}

var _ SoundPlayer = (*AudioManager)(nil)
