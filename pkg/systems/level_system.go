package systems

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/entities"
	"github.com/decker502/chronos/pkg/types"
)

// LevelEntities 关卡加载后模拟需要直接引用的实体
type LevelEntities struct {
	Player  ecs.EntityID
	Mimic   ecs.EntityID
	Turrets int
	Goals   int
}

// LevelSystem 根据关卡网格构建实体
type LevelSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
	rng           *rand.Rand
}

// NewLevelSystem 创建关卡构建器
//
// 参数:
//   - em: 实体管理器
//   - tuning: 炮台属性表，为 nil 时使用默认值
//   - rng: 用于炮台初始开火偏移
func NewLevelSystem(em *ecs.EntityManager, tuning *config.Tuning, rng *rand.Rand) *LevelSystem {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	return &LevelSystem{
		entityManager: em,
		tuning:        tuning,
		rng:           rng,
	}
}

// Load 清空实体管理器并按网格重建关卡
//
// 网格编码见 types.TileCode；未知编码被忽略。
// 玩家和镜像都放在出生点上。
func (s *LevelSystem) Load(cfg *config.LevelConfig) (LevelEntities, error) {
	var out LevelEntities
	if cfg == nil {
		return out, fmt.Errorf("level config cannot be nil")
	}

	s.entityManager.Clear()
	rows := cfg.Rows()

	for row, cells := range cfg.Grid {
		for col, code := range cells {
			x, y := config.CellCenter(row, col, rows)
			if err := s.placeTile(types.TileCode(code), x, y, &out); err != nil {
				return out, fmt.Errorf("level %d cell (%d, %d): %w", cfg.ID, row, col, err)
			}
		}
	}

	spawnX, spawnY := cfg.SpawnPosition()
	player, err := entities.NewPlayer(s.entityManager, spawnX, spawnY)
	if err != nil {
		return out, err
	}
	mimic, err := entities.NewMimic(s.entityManager, spawnX, spawnY)
	if err != nil {
		return out, err
	}
	out.Player, out.Mimic = player, mimic

	log.Printf("[LevelSystem] 关卡 %d (%s) 已加载: %d 个炮台, %d 个目标点, 出生点 (%.0f, %.0f)",
		cfg.ID, cfg.Name, out.Turrets, out.Goals, spawnX, spawnY)
	return out, nil
}

func (s *LevelSystem) placeTile(code types.TileCode, x, y float64, out *LevelEntities) error {
	em := s.entityManager
	var err error

	switch {
	case code.IsWall():
		_, err = entities.NewWall(em, x, y, code == types.TilePlatform)
	case code.TurretVariant() != types.TurretUnknown:
		variant := code.TurretVariant()
		stats, ok := s.tuning.StatsFor(variant)
		if !ok {
			return fmt.Errorf("no stats for turret %s", variant)
		}
		_, err = entities.NewTurret(em, variant, stats, x, y, s.rng)
		out.Turrets++
	case code == types.TileKillBarrier:
		_, err = entities.NewKillBarrier(em, x, y)
	case code == types.TileGoal:
		_, err = entities.NewGoal(em, x, y)
		out.Goals++
	case code == types.TileSpawn:
		_, err = entities.NewSpawnPoint(em, x, y)
	}
	return err
}
