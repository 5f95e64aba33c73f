package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/game"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

const viewGrid = `
grid:
  - [8, -1, 7, 2]
  - [0, 0, 0, 0]
`

func newViewSimulation(t *testing.T, start int) *systems.Simulation {
	t.Helper()
	levels := make(config.LevelSet)
	for id := config.CutsceneLevel; id <= config.FinalLevel; id++ {
		cfg, err := config.ParseLevelConfig([]byte(fmt.Sprintf("id: %d\n%s", id, viewGrid)))
		if err != nil {
			t.Fatalf("ParseLevelConfig(%d) error = %v", id, err)
		}
		levels[id] = cfg
	}
	sim, err := systems.NewSimulation(systems.Options{Levels: levels, Seed: 3, StartLevel: start})
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return sim
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func screenRow(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewDrawsLevel(t *testing.T) {
	screen := newTestScreen(t)
	sim := newViewSimulation(t, config.FirstLevel)

	v := &view{screen: screen}
	v.draw(sim.State())

	var world strings.Builder
	for y := 0; y < viewRows; y++ {
		world.WriteString(screenRow(screen, y, viewCols))
	}
	for _, want := range []rune{'@', 'T', '◆', '█'} {
		if !strings.ContainsRune(world.String(), want) {
			t.Errorf("world view missing %q", want)
		}
	}

	if hud := screenRow(screen, viewRows+1, 80); !strings.HasPrefix(hud, "Health: 100  Score: 0  Chronos: 100  Level: 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if hints := screenRow(screen, viewRows+2, 80); !strings.HasPrefix(hints, "Q: Rewind Time") {
		t.Errorf("hint row = %q", hints)
	}
}

func TestViewDrawsCutsceneCard(t *testing.T) {
	screen := newTestScreen(t)
	sim := newViewSimulation(t, config.CutsceneLevel)

	v := &view{screen: screen}
	v.draw(sim.State())

	found := false
	for y := 0; y < viewRows; y++ {
		if strings.Contains(screenRow(screen, y, viewCols), "Cutscene 0") {
			found = true
		}
	}
	if !found {
		t.Error("cutscene card not drawn")
	}
}

func TestCutsceneLines(t *testing.T) {
	tests := []struct {
		name  string
		state game.FlowState
		want  []string
	}{
		{"intro", game.FlowState{Phase: game.PhaseIntro, Cutscene: 4}, []string{"Cutscene 4", "Press Enter to continue"}},
		{"last intro", game.FlowState{Phase: game.PhaseIntro, Cutscene: config.IntroLastCutscene}, []string{"Cutscene 11", "Press Enter to begin"}},
		{"bad ending", game.FlowState{Phase: game.PhaseEnding, Ending: game.EndingBad, Cutscene: config.BadEndingFirstCutscene},
			[]string{"Cutscene 11", "Ending: " + game.EndingBad.String(), "Press Enter to continue"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cutsceneLines(tt.state)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("cutsceneLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellRangeMinimumOneCell(t *testing.T) {
	sim := newViewSimulation(t, config.FirstLevel)
	st := sim.State()

	c0, c1, r0, r1, ok := cellRange(st.Camera, st.Registry, st.Player)
	if !ok {
		t.Fatal("player has no position")
	}
	if c1 <= c0 || r1 <= r0 {
		t.Errorf("cellRange = [%d,%d)x[%d,%d), want non-empty", c0, c1, r0, r1)
	}
}
