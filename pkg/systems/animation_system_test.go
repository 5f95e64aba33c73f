package systems

import (
	"testing"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/ecs"
)

func TestAnimationSystem(t *testing.T) {
	tests := []struct {
		name      string
		vx        float64
		updates   int
		wantFrame int
	}{
		{"idle stays on first frame", 0, 20, 0},
		{"walking advances every 2 updates", 8, 5, 2},
		{"walking wraps around", -8, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := em.CreateEntity()
			em.AddComponent(id, &components.VelocityComponent{VX: tt.vx})
			em.AddComponent(id, &components.AnimationComponent{FrameCount: 4, FrameTicks: 2})

			sys := NewAnimationSystem(em)
			for i := 0; i < tt.updates; i++ {
				sys.Update()
			}

			anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
			if anim.Frame != tt.wantFrame {
				t.Errorf("Frame = %d, want %d", anim.Frame, tt.wantFrame)
			}
		})
	}
}
