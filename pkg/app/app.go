// Package app 提供游戏应用的核心包装器
//
// 该包把资源、设置、音频和场景的装配从 main 包中提取出来，
// main.go 只负责解析参数、初始化嵌入资源并运行游戏循环。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/embedded"
	"github.com/decker502/chronos/pkg/game"
	"github.com/decker502/chronos/pkg/scenes"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 默认数据文件位置
const (
	DefaultLevelsDir  = "data/levels"
	DefaultTuningPath = "data/tuning.yaml"

	// AppName gdata 存储目录名
	AppName = "chronos"
)

// ErrEmbeddedNotInitialized NewApp 在 embedded.Init() 之前被调用
var ErrEmbeddedNotInitialized = errors.New("embedded.Init() must be called before NewApp")

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 起始关卡，0 表示从开场过场开始
	Level int
	// Seed 炮台初始开火偏移的随机种子
	Seed uint64
	// LevelsDir / TuningPath 数据文件位置，为空时使用默认值
	LevelsDir  string
	TuningPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 关卡或调参文件缺失、非法时返回错误，游戏不会启动。
func NewApp(cfg Config) (*App, error) {
	if !embedded.IsInitialized() {
		return nil, ErrEmbeddedNotInitialized
	}
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.LevelsDir == "" {
		cfg.LevelsDir = DefaultLevelsDir
	}
	if cfg.TuningPath == "" {
		cfg.TuningPath = DefaultTuningPath
	}

	levels, err := config.LoadLevelSet(cfg.LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("调参文件加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d levels, player bullet lifetime %d", len(levels), tuning.PlayerBulletLifetime)

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)

	// gdata 不可用时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(level int) (game.Scene, error) {
		scene, err := scenes.NewGameScene(resourceManager, audioManager, settingsManager, systems.Options{
			Levels:     levels,
			Tuning:     tuning,
			Seed:       cfg.Seed,
			StartLevel: level,
		})
		if err != nil {
			return nil, err
		}
		return scene, nil
	})

	if err := sceneManager.LoadLevel(cfg.Level); err != nil {
		return nil, err
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	err := a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	if errors.Is(err, ebiten.Termination) {
		log.Printf("[App] Game finished")
	}
	return err
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	a.settingsManager.SetFullscreen(fullscreen)

	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 关闭当前场景（停止声音并保存设置）
// 游戏循环结束后由 main 调用
func (a *App) Close() {
	a.sceneManager.Close()
}
