package systems

import (
	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/ecs"
)

// checkAABBCollision 检查两个中心对齐的碰撞盒是否重叠
// 仅边缘接触不算重叠，因此站在地面上的玩家不会与地面相撞
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1 := pos1.X - col1.Width/2
	right1 := pos1.X + col1.Width/2
	bottom1 := pos1.Y - col1.Height/2
	top1 := pos1.Y + col1.Height/2

	left2 := pos2.X - col2.Width/2
	right2 := pos2.X + col2.Width/2
	bottom2 := pos2.Y - col2.Height/2
	top2 := pos2.Y + col2.Height/2

	return right1 > left2 &&
		left1 < right2 &&
		top1 > bottom2 &&
		bottom1 < top2
}

// body 一次查询中缓存的位置与碰撞盒
type body struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	col *components.CollisionComponent
}

// bodyOf 读取实体的位置和碰撞盒
func bodyOf(em *ecs.EntityManager, id ecs.EntityID) (body, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return body{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return body{}, false
	}
	return body{id: id, pos: pos, col: col}, true
}

// bodiesOf 读取一组实体的碰撞体，缺少组件的实体被跳过
func bodiesOf(em *ecs.EntityManager, ids []ecs.EntityID) []body {
	out := make([]body, 0, len(ids))
	for _, id := range ids {
		if b, ok := bodyOf(em, id); ok {
			out = append(out, b)
		}
	}
	return out
}

func (b body) overlaps(other body) bool {
	return checkAABBCollision(b.pos, b.col, other.pos, other.col)
}

// overlapsAny 返回 b 是否与 others 中任一存活实体重叠
func overlapsAny(em *ecs.EntityManager, b body, others []body) bool {
	for _, o := range others {
		if em.IsAlive(o.id) && b.overlaps(o) {
			return true
		}
	}
	return false
}
