package systems

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/types"
)

// testLevel 构造一个通过校验的小关卡
//
//	行 0: 空 空 空 空 空 空
//	行 1: 出生 空 普通 狙击 空 目标
//	行 2: 地面 x6
//	行 3: 即死 x6
func testLevel(t *testing.T, id int) *config.LevelConfig {
	t.Helper()
	data := []byte(`
id: ` + strconv.Itoa(id) + `
grid:
  - [-1, -1, -1, -1, -1, -1]
  - [8, -1, 2, 3, -1, 7]
  - [0, 0, 0, 0, 0, 0]
  - [6, 6, 6, 6, 6, 6]
`)
	cfg, err := config.ParseLevelConfig(data)
	if err != nil {
		t.Fatalf("ParseLevelConfig() error = %v", err)
	}
	return cfg
}

func TestLevelSystemLoad(t *testing.T) {
	em := ecs.NewEntityManager()
	ls := NewLevelSystem(em, nil, rand.New(rand.NewPCG(1, 1)))

	got, err := ls.Load(testLevel(t, 1))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Turrets != 2 || got.Goals != 1 {
		t.Errorf("turrets = %d goals = %d, want 2 and 1", got.Turrets, got.Goals)
	}

	if n := len(ecs.GetEntitiesWith1[*components.WallComponent](em)); n != 6 {
		t.Errorf("walls = %d, want 6", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.KillBarrierComponent](em)); n != 6 {
		t.Errorf("kill barriers = %d, want 6", n)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, got.Player)
	if !ok {
		t.Fatal("player missing position")
	}
	// 第 1 行、4 行高：y = (4-1-1)*32+16
	if pos.X != 16 || pos.Y != 80 {
		t.Errorf("player at (%v, %v), want (16, 80)", pos.X, pos.Y)
	}

	mimicPos, _ := ecs.GetComponent[*components.PositionComponent](em, got.Mimic)
	if mimicPos.X != pos.X || mimicPos.Y != pos.Y {
		t.Error("mimic should start on the spawn point")
	}

	var variants []types.TurretVariant
	for _, id := range ecs.GetEntitiesWith1[*components.TurretComponent](em) {
		tc, _ := ecs.GetComponent[*components.TurretComponent](em, id)
		variants = append(variants, tc.Variant)
	}
	if len(variants) != 2 || variants[0] != types.TurretNormal || variants[1] != types.TurretSniper {
		t.Errorf("turret variants = %v, want [normal sniper]", variants)
	}
}

func TestLevelSystemReloadReplacesEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	ls := NewLevelSystem(em, nil, nil)

	first, _ := ls.Load(testLevel(t, 1))
	count := em.EntityCount()

	second, err := ls.Load(testLevel(t, 1))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if em.EntityCount() != count {
		t.Errorf("entity count after reload = %d, want %d", em.EntityCount(), count)
	}
	if em.IsAlive(first.Player) {
		t.Error("old player should be gone after reload")
	}
	if second.Player == first.Player {
		t.Error("entity ids must not be reused across reloads")
	}
}

func TestLevelSystemNilConfig(t *testing.T) {
	ls := NewLevelSystem(ecs.NewEntityManager(), nil, nil)
	if _, err := ls.Load(nil); err == nil {
		t.Error("Load(nil) should fail")
	}
}
