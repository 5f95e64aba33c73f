package systems

import (
	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 以完整模拟步计数，过期实体被标记删除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进一个完整模拟步
// 返回本步过期的实体数量
func (s *LifetimeSystem) Update() int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentSteps++
		if lifetime.MaxSteps > 0 && lifetime.CurrentSteps >= lifetime.MaxSteps {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	return expired
}
