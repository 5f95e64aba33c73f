package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func resetForTest() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest()
	defer resetForTest()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(nil, fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest()

	_, err := ReadFile("data/levels/level1.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFileByPrefix 测试按前缀分派文件系统
func TestReadFileByPrefix(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(
		fstest.MapFS{"assets/a.txt": {Data: []byte("asset")}},
		fstest.MapFS{"data/b.yaml": {Data: []byte("data")}},
	)

	tests := []struct {
		path string
		want string
	}{
		{"assets/a.txt", "asset"},
		{"./data/b.yaml", "data"},
	}
	for _, tt := range tests {
		got, err := ReadFile(tt.path)
		if err != nil {
			t.Errorf("ReadFile(%q) error: %v", tt.path, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := ReadFile("other/c.txt"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}

// TestNilAssetsFS 测试未提供资源目录时的降级行为
func TestNilAssetsFS(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(nil, fstest.MapFS{})

	_, err := ReadFile("assets/sprites/player.png")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
	if Exists("assets/sprites/player.png") {
		t.Error("Exists should be false without an assets FS")
	}
}

// TestGlob 测试通配匹配
func TestGlob(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(nil, fstest.MapFS{
		"data/levels/level0.yaml": {},
		"data/levels/level1.yaml": {},
		"data/tuning.yaml":        {},
	})

	matches, err := Glob("data/levels/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %v", matches)
	}
}
