package entities

import (
	"fmt"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
)

// newTile 创建占据一个网格单元的静态实体
func newTile(em *ecs.EntityManager, x, y float64, marker interface{}) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.TileSize,
		Height: config.TileSize,
	})
	em.AddComponent(id, marker)
	return id, nil
}

// NewWall 创建地面或平台
func NewWall(em *ecs.EntityManager, x, y float64, platform bool) (ecs.EntityID, error) {
	return newTile(em, x, y, &components.WallComponent{Platform: platform})
}

// NewKillBarrier 创建即死区域
func NewKillBarrier(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	return newTile(em, x, y, &components.KillBarrierComponent{})
}

// NewGoal 创建关卡目标点
func NewGoal(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	return newTile(em, x, y, &components.GoalComponent{})
}

// NewSpawnPoint 创建出生点标记（不参与碰撞判定，仅用于显示）
func NewSpawnPoint(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	return newTile(em, x, y, &components.SpawnPointComponent{})
}
