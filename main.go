package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/chronos/pkg/app"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "启用详细日志输出")
	level     = flag.Int("level", config.CutsceneLevel, "起始关卡 (0 为开场过场, 1-6 为可玩关卡)")
	seed      = flag.Uint64("seed", 0, "炮台开火偏移的随机种子 (0 表示按时间生成)")
	assetsDir = flag.String("assets", ".", "包含 assets/ 目录的根目录，缺失时使用纯色方块并静音")
)

func main() {
	flag.Parse()

	if *level < config.CutsceneLevel || *level > config.FinalLevel {
		log.Fatalf("无效的起始关卡 %d，范围 %d-%d", *level, config.CutsceneLevel, config.FinalLevel)
	}

	embedded.Init(openAssets(*assetsDir), dataFS)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
		Seed:    *seed,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会静默 log，这里恢复输出再报错
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Chronos")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// openAssets 返回以 root 为根、包含 assets/ 的文件系统
// 目录不存在时返回 nil
func openAssets(root string) fs.FS {
	info, err := os.Stat(filepath.Join(root, "assets"))
	if err != nil || !info.IsDir() {
		log.Printf("[main] No assets directory under %s, using placeholder graphics", root)
		return nil
	}
	return os.DirFS(root)
}
