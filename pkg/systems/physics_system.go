package systems

import (
	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
)

// PhysicsStepper 玩家运动的物理步进接口
// 模拟核心只依赖这两个操作，具体的重力与地面接触由实现决定
type PhysicsStepper interface {
	// CanJump 实体脚下是否有支撑
	CanJump(id ecs.EntityID) bool
	// Step 推进一个物理步
	Step(id ecs.EntityID)
}

// PhysicsSystem 平台跳跃物理
//
// 每步先施加重力并沿 Y 轴移动，与墙体重叠时贴合到墙面并清零竖直速度；
// 再沿 X 轴移动，与墙体重叠时贴合到墙面。水平速度由输入控制，不在这里清零。
type PhysicsSystem struct {
	em      *ecs.EntityManager
	gravity float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，墙体为带有 WallComponent 的实体
//
// 返回:
//   - *PhysicsSystem: 使用 config.Gravity 的物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{
		em:      em,
		gravity: config.Gravity,
	}
}

func (ps *PhysicsSystem) walls() []body {
	return bodiesOf(ps.em, ecs.GetEntitiesWith1[*components.WallComponent](ps.em))
}

// CanJump 把实体下移 1 像素，检查是否会碰到墙体
func (ps *PhysicsSystem) CanJump(id ecs.EntityID) bool {
	b, ok := bodyOf(ps.em, id)
	if !ok {
		return false
	}

	below := *b.pos
	below.Y--
	return overlapsAny(ps.em, body{id: id, pos: &below, col: b.col}, ps.walls())
}

// Step 推进一个物理步
func (ps *PhysicsSystem) Step(id ecs.EntityID) {
	b, ok := bodyOf(ps.em, id)
	if !ok {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
	if !ok {
		return
	}
	walls := ps.walls()

	// 竖直方向
	vel.VY -= ps.gravity
	b.pos.Y += vel.VY
	hitY := false
	snapY := b.pos.Y
	for _, w := range walls {
		if !b.overlaps(w) {
			continue
		}
		if vel.VY > 0 {
			// 向上撞到天花板，取最低的贴合位置
			y := w.pos.Y - w.col.Height/2 - b.col.Height/2
			if !hitY || y < snapY {
				snapY = y
			}
		} else {
			// 落到地面，取最高的贴合位置
			y := w.pos.Y + w.col.Height/2 + b.col.Height/2
			if !hitY || y > snapY {
				snapY = y
			}
		}
		hitY = true
	}
	if hitY {
		b.pos.Y = snapY
		vel.VY = 0
	}

	// 水平方向
	if vel.VX == 0 {
		return
	}
	b.pos.X += vel.VX
	hitX := false
	snapX := b.pos.X
	for _, w := range walls {
		if !b.overlaps(w) {
			continue
		}
		if vel.VX > 0 {
			x := w.pos.X - w.col.Width/2 - b.col.Width/2
			if !hitX || x < snapX {
				snapX = x
			}
		} else {
			x := w.pos.X + w.col.Width/2 + b.col.Width/2
			if !hitX || x > snapX {
				snapX = x
			}
		}
		hitX = true
	}
	if hitX {
		b.pos.X = snapX
	}
}
