package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/decker502/chronos/pkg/embedded"
)

const validLevelYAML = `
id: 1
name: "First Steps"
grid:
  - [-1, -1, -1, -1, 7]
  - [-1,  8, -1,  2, -1]
  - [ 0,  0,  0,  0,  0]
`

func TestParseLevelConfig(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(validLevelYAML))
	if err != nil {
		t.Fatalf("ParseLevelConfig failed: %v", err)
	}

	if cfg.ID != 1 {
		t.Errorf("Expected ID=1, got %d", cfg.ID)
	}
	if cfg.Name != "First Steps" {
		t.Errorf("Expected name 'First Steps', got %q", cfg.Name)
	}
	if cfg.Rows() != 3 {
		t.Errorf("Expected 3 rows, got %d", cfg.Rows())
	}
	if cfg.SpawnRow != 1 || cfg.SpawnCol != 1 {
		t.Errorf("Expected spawn at (1,1), got (%d,%d)", cfg.SpawnRow, cfg.SpawnCol)
	}
	if cfg.GoalCount != 1 {
		t.Errorf("Expected 1 goal tile, got %d", cfg.GoalCount)
	}

	x, y := cfg.SpawnPosition()
	if x != 48 || y != 48 {
		t.Errorf("Expected spawn world position (48,48), got (%v,%v)", x, y)
	}
}

func TestParseLevelConfigDefaults(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte("id: 0\ngrid:\n  - [8]\n"))
	if err != nil {
		t.Fatalf("ParseLevelConfig failed: %v", err)
	}
	if cfg.Name != "Cutscene" {
		t.Errorf("Expected default name 'Cutscene', got %q", cfg.Name)
	}
	if !cfg.IsCutscene() {
		t.Error("Level 0 should be a cutscene level")
	}
}

func TestParseLevelConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "missing spawn",
			yaml:    "id: 2\ngrid:\n  - [0, 7]\n",
			wantErr: ErrMissingSpawn,
		},
		{
			name:    "duplicate spawn",
			yaml:    "id: 2\ngrid:\n  - [8, 8, 7]\n",
			wantErr: ErrDuplicateSpawn,
		},
		{
			name:    "missing goal on playable level",
			yaml:    "id: 3\ngrid:\n  - [8, 0]\n",
			wantErr: ErrMissingGoal,
		},
		{
			name:    "empty grid",
			yaml:    "id: 4\n",
			wantErr: ErrEmptyGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseLevelConfigRejectsBadInput(t *testing.T) {
	if _, err := ParseLevelConfig([]byte("id: 9\ngrid:\n  - [8, 7]\n")); err == nil {
		t.Error("Expected error for out-of-range level id")
	}
	if _, err := ParseLevelConfig([]byte("id: [oops")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestCutsceneLevelNeedsNoGoal(t *testing.T) {
	if _, err := ParseLevelConfig([]byte("id: 0\ngrid:\n  - [8, 0]\n")); err != nil {
		t.Errorf("Cutscene level without goal should be valid, got %v", err)
	}
}

func TestLoadLevelSet(t *testing.T) {
	files := fstest.MapFS{}
	files["data/levels/level0.yaml"] = &fstest.MapFile{Data: []byte("id: 0\ngrid:\n  - [8]\n")}
	for id := 1; id <= FinalLevel; id++ {
		files[levelPath(id)] = &fstest.MapFile{Data: []byte(levelYAML(id))}
	}
	embedded.Init(nil, files)

	set, err := LoadLevelSet("data/levels")
	if err != nil {
		t.Fatalf("LoadLevelSet failed: %v", err)
	}
	if len(set) != FinalLevel+1 {
		t.Errorf("Expected %d levels, got %d", FinalLevel+1, len(set))
	}
	if cfg, ok := set.Get(FinalLevel); !ok || cfg.ID != FinalLevel {
		t.Error("Final level should be present")
	}

	// 缺少一个关卡文件应返回错误
	delete(files, levelPath(3))
	if _, err := LoadLevelSet("data/levels"); err == nil {
		t.Error("Expected error when a level file is missing")
	}
}

func TestLoadLevelSetIDMismatch(t *testing.T) {
	files := fstest.MapFS{}
	files["data/levels/level0.yaml"] = &fstest.MapFile{Data: []byte("id: 0\ngrid:\n  - [8]\n")}
	for id := 1; id <= FinalLevel; id++ {
		files[levelPath(id)] = &fstest.MapFile{Data: []byte(levelYAML(id))}
	}
	files[levelPath(2)] = &fstest.MapFile{Data: []byte(levelYAML(5))}
	embedded.Init(nil, files)

	if _, err := LoadLevelSet("data/levels"); err == nil {
		t.Error("Expected error when a file declares the wrong id")
	}
}

func levelPath(id int) string {
	return "data/levels/level" + string(rune('0'+id)) + ".yaml"
}

func levelYAML(id int) string {
	return "id: " + string(rune('0'+id)) + "\ngrid:\n  - [8, -1, 7]\n  - [0, 0, 0]\n"
}
