package config

import (
	"fmt"

	"github.com/decker502/chronos/pkg/embedded"
	"github.com/decker502/chronos/pkg/types"
	"gopkg.in/yaml.v3"
)

// TurretStats 单个炮台类型的战斗属性
type TurretStats struct {
	Health       int     `yaml:"health"`       // 生命值（每发玩家子弹扣 1）
	FireInterval float64 `yaml:"fireInterval"` // 开火间隔（模拟秒）
	BulletSpeed  float64 `yaml:"bulletSpeed"`  // 子弹速度（像素/步）
	BulletSize   float64 `yaml:"bulletSize"`   // 子弹尺寸缩放（相对 TileSize）
	BulletDamage int     `yaml:"bulletDamage"` // 子弹对玩家的伤害
}

// DefaultTurretStats 返回内置的炮台属性表
func DefaultTurretStats() map[types.TurretVariant]TurretStats {
	return map[types.TurretVariant]TurretStats{
		types.TurretNormal:     {Health: 2, FireInterval: 3, BulletSpeed: 6.5, BulletSize: 1, BulletDamage: 1},
		types.TurretSniper:     {Health: 1, FireInterval: 6, BulletSpeed: 30, BulletSize: 0.65, BulletDamage: 2},
		types.TurretDestroyer:  {Health: 4, FireInterval: 4, BulletSpeed: 5.2, BulletSize: 1, BulletDamage: 3},
		types.TurretMachineGun: {Health: 1, FireInterval: 0.3, BulletSpeed: 8.45, BulletSize: 0.7, BulletDamage: 1},
	}
}

// Tuning 可调整的模拟参数
type Tuning struct {
	// Turrets 炮台属性表，按类型索引
	Turrets map[types.TurretVariant]TurretStats

	// PlayerBulletLifetime 玩家子弹最多存活的模拟步数，0 表示永不过期
	PlayerBulletLifetime int
}

// DefaultTuning 返回默认参数
// 玩家子弹默认不过期
func DefaultTuning() *Tuning {
	return &Tuning{
		Turrets:              DefaultTurretStats(),
		PlayerBulletLifetime: 0,
	}
}

// StatsFor 返回指定炮台类型的属性
func (t *Tuning) StatsFor(variant types.TurretVariant) (TurretStats, bool) {
	stats, ok := t.Turrets[variant]
	return stats, ok
}

// tuningFile 调参文件结构，炮台以配置字符串为键
type tuningFile struct {
	Turrets              map[string]TurretStats `yaml:"turrets"`
	PlayerBulletLifetime int                    `yaml:"playerBulletLifetime"`
}

// LoadTuning 从嵌入资源加载调参文件
//
// 参数：
//
//	filepath - 配置文件路径（须以 data/ 开头）
//
// 返回：
//
//	*Tuning - 在默认值基础上应用文件覆盖后的参数
//	error - 文件读取、解析或验证失败
func LoadTuning(filepath string) (*Tuning, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", filepath, err)
	}

	tuning, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", filepath, err)
	}
	return tuning, nil
}

// ParseTuning 解析 YAML 调参数据
// 文件中未出现的炮台类型保留默认属性
func ParseTuning(data []byte) (*Tuning, error) {
	var file tuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	tuning := DefaultTuning()
	tuning.PlayerBulletLifetime = file.PlayerBulletLifetime

	for name, stats := range file.Turrets {
		variant := types.TurretVariantFromString(name)
		if variant == types.TurretUnknown {
			return nil, fmt.Errorf("unknown turret variant %q", name)
		}
		tuning.Turrets[variant] = stats
	}

	if err := validateTuning(tuning); err != nil {
		return nil, err
	}
	return tuning, nil
}

// validateTuning 验证调参的合法性
func validateTuning(t *Tuning) error {
	if t.PlayerBulletLifetime < 0 {
		return fmt.Errorf("playerBulletLifetime cannot be negative, got %d", t.PlayerBulletLifetime)
	}

	for _, variant := range types.AllTurretVariants {
		stats, ok := t.Turrets[variant]
		if !ok {
			return fmt.Errorf("turret %s: missing stats", variant)
		}
		if stats.Health < 1 {
			return fmt.Errorf("turret %s: health must be at least 1, got %d", variant, stats.Health)
		}
		if stats.FireInterval <= 0 {
			return fmt.Errorf("turret %s: fireInterval must be positive, got %v", variant, stats.FireInterval)
		}
		if stats.BulletSpeed < 0 {
			return fmt.Errorf("turret %s: bulletSpeed cannot be negative, got %v", variant, stats.BulletSpeed)
		}
		if stats.BulletSize <= 0 {
			return fmt.Errorf("turret %s: bulletSize must be positive, got %v", variant, stats.BulletSize)
		}
		if stats.BulletDamage < 0 {
			return fmt.Errorf("turret %s: bulletDamage cannot be negative, got %d", variant, stats.BulletDamage)
		}
	}
	return nil
}
