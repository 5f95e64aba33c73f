package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/game"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	colorHUD    = color.RGBA{G: 255, A: 255}
	colorNotice = color.RGBA{R: 255, A: 255}
)

// hudLine 一行 HUD 文本，偏移以玩家中心为原点（世界坐标，Y 向上）
type hudLine struct {
	Text   string
	DX, DY float64
	Color  color.Color
}

// roundMeter 计量槽显示值，.5 时取偶数
func roundMeter(meter float64) int {
	return int(math.RoundToEven(meter))
}

// hudLines 返回跟随玩家显示的 HUD 文本
func hudLines(health, score int, meter float64, showHints bool) []hudLine {
	lines := []hudLine{
		{Text: fmt.Sprintf("Health: %d", health), DX: -160, DY: 100, Color: colorHUD},
		{Text: fmt.Sprintf("Score: %d", score), DX: 100, DY: 100, Color: colorHUD},
		{Text: fmt.Sprintf("Chronos: %d", roundMeter(meter)), DX: 100, DY: 80, Color: colorHUD},
	}

	if showHints {
		lines = append(lines, hudLine{Text: "Q: Rewind Time", DX: -165, DY: -60, Color: colorHUD})
		for i, hint := range systems.AbilityHints(score) {
			lines = append(lines, hudLine{Text: hint, DX: -165, DY: -80 - float64(i)*20, Color: colorHUD})
		}
	}

	if notice, ok := systems.UnlockNotice(score); ok {
		lines = append(lines, hudLine{Text: notice, DX: -65, DY: 50, Color: colorNotice})
	}
	return lines
}

// cutsceneCard 过场图片缺失时显示的文字
func cutsceneCard(n int) []string {
	lines := []string{fmt.Sprintf("Cutscene %d", n)}
	switch {
	case n < config.IntroLastCutscene:
		lines = append(lines, "Click to continue")
	case n == config.IntroLastCutscene:
		lines = append(lines, "Click to begin")
	default:
		lines = append(lines, "Click to continue, the story ends after the last card")
	}
	return lines
}

// drawHUD 绘制跟随玩家的 HUD
func (s *GameScene) drawHUD(screen *ebiten.Image, st *systems.SimulationState) {
	em := st.Registry
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, st.Player)
	if !ok {
		return
	}
	health := 0
	if h, ok := ecs.GetComponent[*components.HealthComponent](em, st.Player); ok {
		health = h.CurrentHealth
	}

	showHints := true
	if s.settings != nil {
		showHints = s.settings.GetSettings().ShowHints
	}

	for _, line := range hudLines(health, st.Score.Value(), st.Time.Meter(), showHints) {
		x, y := systems.WorldToScreen(st.Camera, pos.X+line.DX, pos.Y+line.DY)
		s.drawText(screen, line.Text, x, y, line.Color)
	}
}

// drawText 绘制文本
func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	if s.hudFace == nil {
		return
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.hudFace, opts)
}

// endingLabel 结局名称，供调试层显示
func endingLabel(state game.FlowState) string {
	if state.Phase != game.PhaseEnding && state.Phase != game.PhaseExited {
		return "-"
	}
	return state.Ending.String()
}
