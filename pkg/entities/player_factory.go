package entities

import (
	"fmt"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
)

// NewPlayer 在出生点创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - x, y: 出生点中心的世界坐标
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: em 为 nil 时返回错误
func NewPlayer(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.TileSize,
		Height: config.TileSize,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: config.PlayerMaxHealth,
		MaxHealth:     config.PlayerMaxHealth,
	})
	em.AddComponent(id, &components.PlayerComponent{Facing: components.FacingRight})
	em.AddComponent(id, &components.AnimationComponent{
		FrameCount: config.PlayerAnimationFrames,
		FrameTicks: config.PlayerAnimationFrameTicks,
	})
	return id, nil
}

// NewMimic 创建镜像实体
// 镜像在历史缓冲第一次给出位置前不可见
func NewMimic(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.MimicComponent{Visible: false})
	return id, nil
}
