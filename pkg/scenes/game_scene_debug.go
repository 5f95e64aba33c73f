package scenes

import (
	"fmt"
	"strings"

	"github.com/decker502/chronos/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugLines 调试层显示的模拟内部状态
func debugLines(st *systems.SimulationState, last systems.FrameResult) []string {
	flow := st.Flow.State()
	return []string{
		fmt.Sprintf("frame %d  level %d  phase %s  cutscene %d  ending %s",
			st.Frame, flow.Level, flow.Phase, flow.Cutscene, endingLabel(flow)),
		fmt.Sprintf("time %s  factor %d  meter %.1f", st.Time.Mode(), st.Time.Factor(), st.Time.Meter()),
		fmt.Sprintf("history %d  elapsed %.2fs  recall armed %v", st.History.Len(), st.History.Elapsed(), st.History.Armed()),
		fmt.Sprintf("entities %d  executed %v  exempt %v", st.Registry.EntityCount(), last.Executed, last.Exempt),
		fmt.Sprintf("camera (%.0f, %.0f)  FPS %.1f", st.Camera.ViewLeft, st.Camera.ViewBottom, ebiten.ActualFPS()),
	}
}

// drawDebug 绘制调试信息（F3 切换）
func (s *GameScene) drawDebug(screen *ebiten.Image, st *systems.SimulationState) {
	ebitenutil.DebugPrintAt(screen, strings.Join(debugLines(st, s.last), "\n"), 8, 8)
}
