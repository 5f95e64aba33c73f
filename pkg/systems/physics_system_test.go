package systems

import (
	"testing"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/entities"
)

// TestCheckAABBCollision 测试AABB碰撞检测算法
func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name  string
		pos1  *components.PositionComponent
		col1  *components.CollisionComponent
		pos2  *components.PositionComponent
		col2  *components.CollisionComponent
		want  bool
		descr string
	}{
		{
			name:  "完全重叠",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  &components.CollisionComponent{Width: 32, Height: 32},
			pos2:  &components.PositionComponent{X: 100, Y: 100},
			col2:  &components.CollisionComponent{Width: 32, Height: 32},
			want:  true,
			descr: "中心重合应该检测到碰撞",
		},
		{
			name:  "部分重叠",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  &components.CollisionComponent{Width: 32, Height: 32},
			pos2:  &components.PositionComponent{X: 120, Y: 110},
			col2:  &components.CollisionComponent{Width: 32, Height: 32},
			want:  true,
			descr: "部分重叠应该检测到碰撞",
		},
		{
			name:  "边缘接触",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  &components.CollisionComponent{Width: 32, Height: 32},
			pos2:  &components.PositionComponent{X: 100, Y: 132},
			col2:  &components.CollisionComponent{Width: 32, Height: 32},
			want:  false,
			descr: "仅边缘接触不算碰撞（站在地面上）",
		},
		{
			name:  "完全分离",
			pos1:  &components.PositionComponent{X: 100, Y: 100},
			col1:  &components.CollisionComponent{Width: 32, Height: 32},
			pos2:  &components.PositionComponent{X: 200, Y: 100},
			col2:  &components.CollisionComponent{Width: 32, Height: 32},
			want:  false,
			descr: "碰撞盒水平完全分离不应该检测到碰撞",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkAABBCollision(tt.pos1, tt.col1, tt.pos2, tt.col2)
			if got != tt.want {
				t.Errorf("%s: checkAABBCollision() = %v, want %v", tt.descr, got, tt.want)
			}
		})
	}
}

// groundRow 在 y=16 处铺一排地面
func groundRow(em *ecs.EntityManager, cols int) {
	for c := 0; c < cols; c++ {
		entities.NewWall(em, float64(c)*config.TileSize+16, 16, false)
	}
}

func TestPhysicsFallsAndLands(t *testing.T) {
	em := ecs.NewEntityManager()
	groundRow(em, 5)
	player, _ := entities.NewPlayer(em, 48, 200)
	ps := NewPhysicsSystem(em)

	if ps.CanJump(player) {
		t.Fatal("airborne player should not be able to jump")
	}

	for i := 0; i < 500; i++ {
		ps.Step(player)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player)
	if pos.Y != 48 {
		t.Errorf("landed at y = %v, want 48", pos.Y)
	}
	if !ps.CanJump(player) {
		t.Error("grounded player should be able to jump")
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, player)
	if vel.VY != 0 {
		t.Errorf("VY after landing = %v, want 0", vel.VY)
	}
}

func TestPhysicsJumpLeavesGround(t *testing.T) {
	em := ecs.NewEntityManager()
	groundRow(em, 3)
	player, _ := entities.NewPlayer(em, 48, 48)
	ps := NewPhysicsSystem(em)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, player)
	vel.VY = config.JumpSpeed
	ps.Step(player)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player)
	if pos.Y <= 48 {
		t.Errorf("y after jump step = %v, want above 48", pos.Y)
	}
}

func TestPhysicsWallStopsHorizontalMovement(t *testing.T) {
	em := ecs.NewEntityManager()
	groundRow(em, 6)
	// 玩家右侧一堵墙
	entities.NewWall(em, 4*config.TileSize+16, 48, true)
	player, _ := entities.NewPlayer(em, 48, 48)
	ps := NewPhysicsSystem(em)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, player)
	vel.VX = config.MovementSpeed
	for i := 0; i < 20; i++ {
		ps.Step(player)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player)
	if pos.X != 4*config.TileSize-16 {
		t.Errorf("x = %v, want %v (against the wall)", pos.X, 4*config.TileSize-16)
	}
	if pos.Y != 48 {
		t.Errorf("y = %v, want 48", pos.Y)
	}
}

func TestPhysicsSystemImplementsStepper(t *testing.T) {
	var _ PhysicsStepper = NewPhysicsSystem(ecs.NewEntityManager())
}
