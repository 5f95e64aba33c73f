package systems

import (
	"log"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/game"
)

// CombatResult 一个完整模拟步的战斗结算结果
type CombatResult struct {
	PlayerHits int  // 玩家被命中次数
	TurretHits int  // 炮台被命中次数
	Kills      int  // 摧毁的炮台数量
	PlayerDied bool // 玩家生命值耗尽
}

// ZoneResult 玩家与特殊区域的接触结果
type ZoneResult struct {
	KillBarrier bool // 触碰即死区域
	Goal        bool // 触碰目标点（关卡 0 中始终为 false）
}

// CombatSystem 子弹、墙体、玩家与炮台之间的碰撞结算
//
// 删除一律通过 DestroyEntity 标记，帧末统一压缩；被标记的实体对之后的
// 查询和碰撞检查不可见，所以同一颗子弹不会造成两次伤害。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	score         *game.Score
	sound         game.SoundPlayer
}

// NewCombatSystem 创建战斗系统
//
// 参数:
//   - em: 实体管理器
//   - score: 击毁炮台时加分
//   - sound: 命中与击毁音效，为 nil 时静音
func NewCombatSystem(em *ecs.EntityManager, score *game.Score, sound game.SoundPlayer) *CombatSystem {
	if sound == nil {
		sound = game.NopSoundPlayer{}
	}
	return &CombatSystem{
		entityManager: em,
		score:         score,
		sound:         sound,
	}
}

// ResolveStep 按固定顺序执行一个完整模拟步的战斗结算
//
//  1. 敌方子弹撞墙消失
//  2. 玩家子弹前进
//  3. 敌方子弹命中玩家：扣血、子弹消失
//  4. 玩家生命值 <= 0 时标记死亡
//  5. 玩家子弹命中炮台：炮台固定扣 1 点，子弹消失
//  6. 生命值 <= 0 的炮台被移除并加分
func (s *CombatSystem) ResolveStep(playerID ecs.EntityID) CombatResult {
	var result CombatResult

	s.removeBulletsHittingWalls()
	s.advancePlayerBullets()

	if player, ok := bodyOf(s.entityManager, playerID); ok {
		result.PlayerHits = s.hitPlayer(player)
	}

	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID); ok && health.IsDepleted() {
		result.PlayerDied = true
		if p, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID); ok {
			p.Dead = true
		}
	}

	result.TurretHits = s.hitTurrets()
	result.Kills = s.removeDestroyedTurrets()
	return result
}

// CheckZones 检查玩家与即死区域、目标点的接触
// allowGoal 为 false（关卡 0）时不检测目标点
func (s *CombatSystem) CheckZones(playerID ecs.EntityID, allowGoal bool) ZoneResult {
	var result ZoneResult

	player, ok := bodyOf(s.entityManager, playerID)
	if !ok {
		return result
	}

	barriers := bodiesOf(s.entityManager, ecs.GetEntitiesWith1[*components.KillBarrierComponent](s.entityManager))
	if overlapsAny(s.entityManager, player, barriers) {
		result.KillBarrier = true
		if p, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID); ok {
			p.Dead = true
		}
	}

	if allowGoal {
		goals := bodiesOf(s.entityManager, ecs.GetEntitiesWith1[*components.GoalComponent](s.entityManager))
		result.Goal = overlapsAny(s.entityManager, player, goals)
	}
	return result
}

// bulletsOf 返回指定归属的存活子弹
func (s *CombatSystem) bulletsOf(owner components.BulletOwner) []ecs.EntityID {
	all := ecs.GetEntitiesWith1[*components.BulletComponent](s.entityManager)
	out := make([]ecs.EntityID, 0, len(all))
	for _, id := range all {
		if b, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, id); ok && b.Owner == owner {
			out = append(out, id)
		}
	}
	return out
}

func (s *CombatSystem) removeBulletsHittingWalls() {
	walls := bodiesOf(s.entityManager, ecs.GetEntitiesWith1[*components.WallComponent](s.entityManager))
	if len(walls) == 0 {
		return
	}
	for _, b := range bodiesOf(s.entityManager, s.bulletsOf(components.BulletOwnerEnemy)) {
		if overlapsAny(s.entityManager, b, walls) {
			s.entityManager.DestroyEntity(b.id)
		}
	}
}

func (s *CombatSystem) advancePlayerBullets() {
	for _, id := range s.bulletsOf(components.BulletOwnerPlayer) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			pos.X += vel.VX
		}
	}
}

func (s *CombatSystem) hitPlayer(player body) int {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, player.id)
	if !ok {
		return 0
	}

	hits := 0
	for _, b := range bodiesOf(s.entityManager, s.bulletsOf(components.BulletOwnerEnemy)) {
		if !b.overlaps(player) {
			continue
		}
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, b.id)
		health.CurrentHealth -= bullet.Damage
		s.entityManager.DestroyEntity(b.id)
		s.sound.Play(config.SoundHit, config.VolumeHit)
		hits++
	}
	return hits
}

func (s *CombatSystem) hitTurrets() int {
	turrets := bodiesOf(s.entityManager, ecs.GetEntitiesWith2[*components.TurretComponent, *components.HealthComponent](s.entityManager))
	if len(turrets) == 0 {
		return 0
	}

	hits := 0
	for _, b := range bodiesOf(s.entityManager, s.bulletsOf(components.BulletOwnerPlayer)) {
		for _, t := range turrets {
			if !b.overlaps(t) {
				continue
			}
			health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, t.id)
			health.CurrentHealth -= config.PlayerBulletDamage
			s.entityManager.DestroyEntity(b.id)
			hits++
			break
		}
	}
	return hits
}

func (s *CombatSystem) removeDestroyedTurrets() int {
	kills := 0
	for _, id := range ecs.GetEntitiesWith2[*components.TurretComponent, *components.HealthComponent](s.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !health.IsDepleted() {
			continue
		}
		s.entityManager.DestroyEntity(id)
		if s.score != nil {
			if err := s.score.Add(config.KillScore); err != nil {
				log.Printf("[CombatSystem] 加分失败: %v", err)
			}
		}
		s.sound.Play(config.SoundKill, config.VolumeKill)
		kills++
	}
	return kills
}
