// chronoterm 在终端里运行时间模拟
//
// 与图形版共用同一个模拟核心，按 tcell 字符网格绘制关卡。
// 关卡与调参文件从 -data 指定的目录读取（该目录下须有 data/）。
//
// 按键：
//
//	a/d 或 ←/→  移动        w 或 ↑  跳跃
//	s           缓慢时间    空格    停止时间（再按一次任一能力键松开）
//	q           回溯        Enter/f/鼠标左键  射击或翻过过场
//	Esc         静音        Ctrl-C  退出
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/chronos/pkg/app"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/embedded"
	"github.com/decker502/chronos/pkg/game"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	dataRoot = flag.String("data", ".", "包含 data/ 目录的根目录")
	level    = flag.Int("level", config.CutsceneLevel, "起始关卡 (0 为开场过场, 1-6 为可玩关卡)")
	seed     = flag.Uint64("seed", 0, "炮台开火偏移的随机种子 (0 表示按时间生成)")
	mute     = flag.Bool("mute", false, "关闭合成音效")
	logFile  = flag.String("log", "", "日志输出文件，为空时不记录")
)

// errQuit 玩家主动退出
var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	if err := run(); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "chronoterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	embedded.Init(nil, os.DirFS(*dataRoot))

	levels, err := config.LoadLevelSet(app.DefaultLevelsDir)
	if err != nil {
		return fmt.Errorf("关卡加载失败: %w", err)
	}
	tuning, err := config.LoadTuning(app.DefaultTuningPath)
	if err != nil {
		return fmt.Errorf("调参文件加载失败: %w", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var sound game.SoundPlayer = game.NopSoundPlayer{}
	if !*mute {
		tp := newTonePlayer()
		if err := tp.Init(); err != nil {
			log.Printf("[chronoterm] Audio initialization failed: %v", err)
		} else {
			defer tp.Close()
			sound = tp
		}
	}

	sim, err := systems.NewSimulation(systems.Options{
		Levels:     levels,
		Tuning:     tuning,
		Sound:      sound,
		Seed:       *seed,
		StartLevel: *level,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return loop(screen, sim)
}

// loop 以 60Hz 推进模拟，直到结局流程结束或玩家按 Ctrl-C
func loop(screen tcell.Screen, sim *systems.Simulation) error {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var keys keyTracker
	v := &view{screen: screen}

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			keys.handle(ev, time.Now())
			if keys.quit {
				return errQuit
			}

		case now := <-ticker.C:
			res, err := sim.Update(keys.frame(now, sim.State().Time.Active()))
			if err != nil {
				return err
			}
			if res.Transition.Kind == game.TransitionExit {
				log.Printf("[chronoterm] Ending finished (score %d)", sim.State().Score.Value())
				return nil
			}
			v.draw(sim.State())
		}
	}
}

// setupLog 终端被游戏画面占用，日志只能写文件
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
