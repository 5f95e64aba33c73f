package systems

import (
	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/ecs"
)

// AnimationSystem 管理所有实体的循环帧动画
// 每个渲染帧调用一次（包括未执行完整模拟步的帧），只影响显示
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进一帧
// 有水平速度的实体播放行走循环，静止的实体停在第 0 帧
func (s *AnimationSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			anim.Moving = vel.VX != 0
		}

		if !anim.Moving || anim.FrameCount <= 0 {
			anim.Frame = 0
			anim.Elapsed = 0
			continue
		}

		anim.Elapsed++
		if anim.FrameTicks <= 0 || anim.Elapsed >= anim.FrameTicks {
			anim.Elapsed = 0
			anim.Frame = (anim.Frame + 1) % anim.FrameCount
		}
	}
}
