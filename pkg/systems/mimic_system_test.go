package systems

import (
	"testing"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/entities"
)

// stepsPastDelay 度过等待期所需的 Advance 次数
func stepsPastDelay(h *HistoryBuffer) int {
	n := 0
	for !h.Ready() {
		h.Advance(config.SimStepSeconds)
		n++
	}
	return n
}

func TestHistoryBufferNoEchoDuringDelay(t *testing.T) {
	h := NewHistoryBuffer()
	for i := 0; i < 100; i++ {
		h.OnStep(Position{X: float64(i)})
		if echo := h.Advance(config.SimStepSeconds); echo.MimicMoved || echo.Recalled {
			t.Fatalf("step %d produced %+v during the delay window", i, echo)
		}
	}
	if h.Len() != 100 {
		t.Errorf("Len() = %d, want 100", h.Len())
	}
}

func TestHistoryBufferDelayIsAboutThreeSeconds(t *testing.T) {
	h := NewHistoryBuffer()
	n := stepsPastDelay(h)
	want := int(config.MimicDelaySeconds / config.SimStepSeconds)
	if n < want || n > want+2 {
		t.Errorf("delay lasted %d steps, want about %d", n, want)
	}
}

func TestHistoryBufferFIFO(t *testing.T) {
	h := NewHistoryBuffer()
	stepsPastDelay(h)

	for i := 1; i <= 3; i++ {
		h.OnStep(Position{X: float64(i)})
	}
	for i := 1; i <= 3; i++ {
		echo := h.Advance(config.SimStepSeconds)
		if !echo.MimicMoved || echo.Mimic.X != float64(i) {
			t.Fatalf("advance %d = %+v, want mimic at x=%d", i, echo, i)
		}
	}

	if echo := h.Advance(config.SimStepSeconds); echo.MimicMoved {
		t.Errorf("empty buffer moved the mimic: %+v", echo)
	}
}

func TestRecallDuringDelayIsNoop(t *testing.T) {
	h := NewHistoryBuffer()
	for i := 0; i < 10; i++ {
		h.OnStep(Position{X: float64(i)})
	}
	h.ArmRecall()

	echo := h.Advance(config.SimStepSeconds)
	if echo.Recalled || echo.MimicMoved {
		t.Errorf("recall inside the delay window produced %+v", echo)
	}
	if h.Armed() {
		t.Error("recall should be consumed inside the delay window")
	}
	if h.Len() != 10 {
		t.Errorf("Len() = %d, want 10", h.Len())
	}
}

func TestRecallClearsBuffer(t *testing.T) {
	h := NewHistoryBuffer()
	stepsPastDelay(h)

	h.OnStep(Position{X: 1, Y: 10})
	h.OnStep(Position{X: 2, Y: 20})
	h.OnStep(Position{X: 3, Y: 30})
	h.ArmRecall()

	echo := h.Advance(config.SimStepSeconds)
	if !echo.MimicMoved || echo.Mimic != (Position{X: 1, Y: 10}) {
		t.Errorf("mimic = %+v, want oldest entry", echo.Mimic)
	}
	// 玩家落到弹出后剩余的最旧位置
	if !echo.Recalled || echo.Recall != (Position{X: 2, Y: 20}) {
		t.Errorf("recall = %+v, want (2, 20)", echo.Recall)
	}
	if h.Len() != 0 {
		t.Errorf("Len() after recall = %d, want 0", h.Len())
	}
	if h.Elapsed() != 0 || h.Armed() {
		t.Errorf("after recall elapsed = %v armed = %v", h.Elapsed(), h.Armed())
	}
}

func TestRecallWithEmptyBufferIsNoop(t *testing.T) {
	tests := []struct {
		name    string
		entries int
	}{
		{"empty", 0},
		{"single entry consumed by mimic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistoryBuffer()
			stepsPastDelay(h)
			for i := 0; i < tt.entries; i++ {
				h.OnStep(Position{X: 5})
			}
			h.ArmRecall()

			echo := h.Advance(config.SimStepSeconds)
			if echo.Recalled {
				t.Errorf("recall with nothing left produced %+v", echo)
			}
			if h.Armed() {
				t.Error("recall should be disarmed")
			}
			if !h.Ready() {
				t.Error("a no-op recall should not restart the delay window")
			}
		})
	}
}

func TestMimicSystemMovesEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	playerID, _ := entities.NewPlayer(em, 0, 0)
	mimicID, _ := entities.NewMimic(em, 0, 0)

	h := NewHistoryBuffer()
	sys := NewMimicSystem(em, h)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)

	// 每步玩家右移 1 像素
	step := 0
	for !h.Ready() {
		step++
		playerPos.X = float64(step)
		sys.Update(playerID, mimicID, config.SimStepSeconds)
	}

	mimic, _ := ecs.GetComponent[*components.MimicComponent](em, mimicID)
	if mimic.Visible {
		t.Fatal("mimic should stay hidden during the delay window")
	}

	step++
	playerPos.X = float64(step)
	sys.Update(playerID, mimicID, config.SimStepSeconds)

	mimicPos, _ := ecs.GetComponent[*components.PositionComponent](em, mimicID)
	if !mimic.Visible {
		t.Error("mimic should become visible once it moves")
	}
	if mimicPos.X != 1 {
		t.Errorf("mimic x = %v, want 1 (the first recorded position)", mimicPos.X)
	}

	h.ArmRecall()
	step++
	playerPos.X = float64(step)
	if !sys.Update(playerID, mimicID, config.SimStepSeconds) {
		t.Fatal("expected recall")
	}
	if playerPos.X != 3 {
		t.Errorf("player x after recall = %v, want 3", playerPos.X)
	}
	if mimicPos.X != 2 {
		t.Errorf("mimic x after recall = %v, want 2", mimicPos.X)
	}
}
