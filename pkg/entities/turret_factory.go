package entities

import (
	"fmt"
	"math/rand/v2"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/types"
)

// NewTurret 创建炮台实体
//
// 参数:
//   - em: 实体管理器
//   - variant: 炮台类型
//   - stats: 该类型的战斗属性（来自调参表）
//   - x, y: 网格中心的世界坐标
//   - rng: 随机源，用于错开各炮台首次开火时间；为 nil 时不错开
//
// 返回:
//   - ecs.EntityID: 炮台实体ID
//   - error: 参数非法时返回错误
func NewTurret(em *ecs.EntityManager, variant types.TurretVariant, stats config.TurretStats, x, y float64, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if variant == types.TurretUnknown {
		return 0, fmt.Errorf("unknown turret variant")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.TileSize,
		Height: config.TileSize,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	em.AddComponent(id, &components.TurretComponent{
		Variant:       variant,
		FireInterval:  stats.FireInterval,
		SinceLastShot: InitialFireOffset(stats.FireInterval, rng),
		BulletSpeed:   stats.BulletSpeed,
		BulletSize:    stats.BulletSize,
		BulletDamage:  stats.BulletDamage,
	})
	return id, nil
}

// InitialFireOffset 计算炮台开火计时器的初始值
//
// 间隔 >= 1 秒的炮台从 [0, interval-1) 的整数秒加上 0.1~0.9 秒的随机偏移开始计时，
// 使同一关卡中的炮台不会同时开火；高射速炮台从 0 开始。
func InitialFireOffset(interval float64, rng *rand.Rand) float64 {
	if interval < 1 || rng == nil {
		return 0
	}
	whole := 0
	if n := int(interval) - 1; n > 0 {
		whole = rng.IntN(n)
	}
	tenths := 1 + rng.IntN(9)
	return float64(whole) + float64(tenths)/10
}
