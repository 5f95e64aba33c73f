package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/decker502/chronos/pkg/embedded"
	"github.com/decker502/chronos/pkg/types"
	"gopkg.in/yaml.v3"
)

// 关卡配置验证错误
var (
	// ErrMissingSpawn 关卡网格中没有出生点
	ErrMissingSpawn = errors.New("level has no spawn point")
	// ErrDuplicateSpawn 关卡网格中有多个出生点
	ErrDuplicateSpawn = errors.New("level has more than one spawn point")
	// ErrMissingGoal 可玩关卡没有目标点
	ErrMissingGoal = errors.New("level has no goal")
	// ErrEmptyGrid 关卡网格为空
	ErrEmptyGrid = errors.New("level grid is empty")
)

// LevelConfig 关卡配置数据结构
// Grid 中每个整数是一个 types.TileCode，第 0 行位于地图最上方
type LevelConfig struct {
	ID   int     `yaml:"id"`   // 关卡编号 0..6
	Name string  `yaml:"name"` // 关卡名称（仅用于显示和日志）
	Grid [][]int `yaml:"grid"` // 网格编码

	// 以下字段由加载器计算，不来自文件
	SpawnRow, SpawnCol int `yaml:"-"`
	GoalCount          int `yaml:"-"`
}

// IsCutscene 是否为过场关卡
func (c *LevelConfig) IsCutscene() bool {
	return c.ID == CutsceneLevel
}

// Rows 返回网格行数
func (c *LevelConfig) Rows() int {
	return len(c.Grid)
}

// SpawnPosition 返回出生点中心的世界坐标
func (c *LevelConfig) SpawnPosition() (float64, float64) {
	return CellCenter(c.SpawnRow, c.SpawnCol, c.Rows())
}

// LevelSet 按编号索引的全部关卡
type LevelSet map[int]*LevelConfig

// Get 返回指定编号的关卡
func (s LevelSet) Get(id int) (*LevelConfig, bool) {
	cfg, ok := s[id]
	return cfg, ok
}

// LoadLevelConfig 从嵌入资源加载单个关卡配置
//
// 参数：
//
//	filepath - 关卡配置文件的路径（须以 data/ 开头）
//
// 返回：
//
//	*LevelConfig - 解析并验证后的关卡配置
//	error - 文件读取、解析或验证失败
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", filepath, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析并验证 YAML 关卡数据
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, err
	}
	return &levelConfig, nil
}

// LoadLevelSet 加载目录下 level0.yaml .. level6.yaml
// 任何一个关卡缺失或非法都视为致命配置错误
func LoadLevelSet(dir string) (LevelSet, error) {
	set := make(LevelSet, FinalLevel+1)
	for id := CutsceneLevel; id <= FinalLevel; id++ {
		file := path.Join(dir, fmt.Sprintf("level%d.yaml", id))
		cfg, err := LoadLevelConfig(file)
		if err != nil {
			return nil, err
		}
		if cfg.ID != id {
			return nil, fmt.Errorf("level config %s declares id %d, expected %d", file, cfg.ID, id)
		}
		set[id] = cfg
	}
	return set, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Name == "" {
		if config.ID == CutsceneLevel {
			config.Name = "Cutscene"
		} else {
			config.Name = fmt.Sprintf("Level %d", config.ID)
		}
	}
}

// validateLevelConfig 验证关卡配置的完整性
// 同时记录出生点位置与目标点数量
func validateLevelConfig(config *LevelConfig) error {
	if config.ID < CutsceneLevel || config.ID > FinalLevel {
		return fmt.Errorf("level id %d out of range [%d, %d]", config.ID, CutsceneLevel, FinalLevel)
	}

	if len(config.Grid) == 0 {
		return fmt.Errorf("level %d: %w", config.ID, ErrEmptyGrid)
	}

	spawns := 0
	config.GoalCount = 0
	for row, cells := range config.Grid {
		for col, code := range cells {
			switch types.TileCode(code) {
			case types.TileSpawn:
				spawns++
				config.SpawnRow, config.SpawnCol = row, col
			case types.TileGoal:
				config.GoalCount++
			}
		}
	}

	if spawns == 0 {
		return fmt.Errorf("level %d: %w", config.ID, ErrMissingSpawn)
	}
	if spawns > 1 {
		return fmt.Errorf("level %d: %w (found %d)", config.ID, ErrDuplicateSpawn, spawns)
	}
	if config.ID != CutsceneLevel && config.GoalCount == 0 {
		return fmt.Errorf("level %d: %w", config.ID, ErrMissingGoal)
	}
	return nil
}
