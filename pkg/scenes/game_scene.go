package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/embedded"
	"github.com/decker502/chronos/pkg/game"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	// WindowWidth / WindowHeight 逻辑屏幕大小
	WindowWidth  = config.GameWindowWidth
	WindowHeight = config.GameWindowHeight

	// KeyDebug 切换调试信息叠加层
	KeyDebug = ebiten.KeyF3
	// KeyHints 切换能力提示
	KeyHints = ebiten.KeyH
	// KeyMusic 重新打开被 Esc 关闭的背景音乐
	KeyMusic = ebiten.KeyM
	// KeyVolumeDown / KeyVolumeUp 调整背景音乐倍率
	KeyVolumeDown = ebiten.KeyMinus
	KeyVolumeUp   = ebiten.KeyEqual

	// volumeStep 每次按键调整的音乐倍率
	volumeStep = 0.1
)

// settingsInput 本帧按下的设置快捷键
type settingsInput struct {
	ToggleHints bool
	MusicOn     bool
	VolumeDelta float64
}

// pollSettingsInput 从 ebiten 读取设置快捷键
func pollSettingsInput() settingsInput {
	in := settingsInput{
		ToggleHints: inpututil.IsKeyJustPressed(KeyHints),
		MusicOn:     inpututil.IsKeyJustPressed(KeyMusic),
	}
	if inpututil.IsKeyJustPressed(KeyVolumeDown) {
		in.VolumeDelta -= volumeStep
	}
	if inpututil.IsKeyJustPressed(KeyVolumeUp) {
		in.VolumeDelta += volumeStep
	}
	return in
}

// GameScene 游戏主场景
// 每个渲染帧读取输入、推进一次模拟，再按模拟状态绘制
type GameScene struct {
	sprites  game.SpriteLoader
	audio    *game.AudioManager // 可为 nil（静音）
	settings *game.SettingsManager

	sim *systems.Simulation

	// pollInput / pollSettings 读取本帧输入，测试中可以替换
	pollInput    func() systems.Input
	pollSettings func() settingsInput

	hudFace      text.Face
	musicStarted bool
	showDebug    bool

	// last 上一帧的模拟结果，供调试层显示
	last systems.FrameResult
}

// NewGameScene 创建游戏场景并加载起始关卡
//
// 参数：
//   - sprites: 精灵加载器，可为 nil（全部使用纯色方块）
//   - am: 音频管理器，可为 nil（静音）
//   - settings: 设置管理器，可为 nil
//   - opts: 模拟参数，Sound 会被替换为 am
func NewGameScene(sprites game.SpriteLoader, am *game.AudioManager, settings *game.SettingsManager, opts systems.Options) (*GameScene, error) {
	if am != nil {
		opts.Sound = am
	}

	sim, err := systems.NewSimulation(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	log.Printf("[GameScene] Started at level %d (seed %d)", sim.State().Flow.Level(), opts.Seed)

	return &GameScene{
		sprites:   sprites,
		audio:     am,
		settings:  settings,
		sim:          sim,
		pollInput:    systems.PollInput,
		pollSettings: pollSettingsInput,
		hudFace:      loadHUDFace(sprites),
	}, nil
}

// loadHUDFace 优先使用 assets 中的 HUD 字体，缺失或损坏时退回内置点阵字体
func loadHUDFace(sprites game.SpriteLoader) text.Face {
	fallback := text.NewGoXFace(basicfont.Face7x13)

	fonts, ok := sprites.(game.FontLoader)
	if !ok || !embedded.Exists(config.HUDFontPath) {
		return fallback
	}
	face, err := fonts.LoadFont(config.HUDFontPath, config.HUDFontSize)
	if err != nil {
		log.Printf("[GameScene] Warning: HUD font unavailable, using built-in face: %v", err)
		return fallback
	}
	return face
}

// Simulation 返回场景持有的模拟
func (s *GameScene) Simulation() *systems.Simulation {
	return s.sim
}

// Update 推进一个渲染帧
// 结局流程结束后返回 ebiten.Termination
func (s *GameScene) Update(deltaTime float64) error {
	if !s.musicStarted {
		s.musicStarted = true
		if s.audio != nil {
			s.audio.Play(config.SoundBackground, config.VolumeBackground)
		}
	}

	if inpututil.IsKeyJustPressed(KeyDebug) {
		s.showDebug = !s.showDebug
	}
	s.applySettings(s.pollSettings())

	return s.step(s.pollInput())
}

// applySettings 应用设置快捷键，有改动时立即保存
func (s *GameScene) applySettings(in settingsInput) {
	if s.settings == nil {
		return
	}
	current := s.settings.GetSettings()
	changed := false

	if in.ToggleHints {
		s.settings.SetShowHints(!current.ShowHints)
		changed = true
	}
	if in.MusicOn && !current.MusicEnabled {
		s.settings.SetMusicEnabled(true)
		if s.audio != nil {
			s.audio.Play(config.SoundBackground, config.VolumeBackground)
		}
		changed = true
	}
	if in.VolumeDelta != 0 {
		s.settings.SetMusicVolume(current.MusicVolume + in.VolumeDelta)
		if s.audio != nil {
			s.audio.RefreshMusicVolume()
		}
		changed = true
	}

	if changed {
		s.saveSettings()
	}
}

// muteMusic Esc 关闭背景音乐并记住这个选择
func (s *GameScene) muteMusic() {
	if s.settings == nil || !s.settings.GetSettings().MusicEnabled {
		return
	}
	s.settings.SetMusicEnabled(false)
	s.saveSettings()
}

func (s *GameScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
}

// step 用给定输入推进模拟
func (s *GameScene) step(in systems.Input) error {
	res, err := s.sim.Update(in)
	if err != nil {
		return fmt.Errorf("simulation update failed: %w", err)
	}
	s.last = res
	if in.MuteMusic {
		s.muteMusic()
	}

	switch res.Transition.Kind {
	case game.TransitionLoad:
		log.Printf("[GameScene] Level %d loaded (score %d)", res.Transition.Level, s.sim.State().Score.Value())
	case game.TransitionExit:
		log.Printf("[GameScene] Ending finished, exiting")
		return ebiten.Termination
	}
	return nil
}

// Close 停止所有声音并保存设置
func (s *GameScene) Close() {
	if s.audio != nil {
		s.audio.StopAll()
	}
	if s.settings != nil {
		s.saveSettings()
	}
}

// Draw 绘制场景
// 顺序：关卡几何、实体、HUD，过场关卡最后覆盖过场图
func (s *GameScene) Draw(screen *ebiten.Image) {
	st := s.sim.State()

	s.drawWorld(screen, st)
	s.drawHUD(screen, st)

	if st.Flow.InCutscene() {
		s.drawCutscene(screen, st.Flow.State().Cutscene)
	}

	if s.showDebug {
		s.drawDebug(screen, st)
	}
}
