package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
	err   error
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
profile = "compact"

[display]
fps = 30
headless = true

[theme]
text = "#ffffff"
`)

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config["profile"] != "compact" {
		t.Errorf("profile = %v, want compact", config["profile"])
	}

	display, ok := config["display"].(map[string]any)
	if !ok {
		t.Fatal("expected display to be a map")
	}
	if display["fps"] != int64(30) {
		t.Errorf("fps = %v (%T), want 30", display["fps"], display["fps"])
	}
	if display["headless"] != true {
		t.Errorf("headless = %v, want true", display["headless"])
	}

	if v, ok := GetByPath(config, "theme.text"); !ok || v != "#ffffff" {
		t.Errorf("theme.text = %v, want #ffffff", v)
	}
	if loader.Path() != "/config.toml" {
		t.Errorf("Path() = %q, want /config.toml", loader.Path())
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	for _, path := range []string{"/nonexistent.toml", ""} {
		loader := NewTOMLLoaderWithFS(NewMemFS(), path)

		config, err := loader.Load()
		if err != nil {
			t.Fatalf("Load(%q): expected no error, got: %v", path, err)
		}
		if config != nil {
			t.Errorf("Load(%q): expected nil config", path)
		}
	}
}

func TestTOMLLoader_LoadReadError(t *testing.T) {
	memfs := NewMemFS()
	memfs.err = fs.ErrPermission

	_, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Load error = %v, want ErrPermission", err)
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[display
fps = 4
`)

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line != 2 {
		t.Errorf("Line = %d, want 2", parseErr.Line)
	}
	if !strings.Contains(parseErr.Error(), "line 2") {
		t.Errorf("Error() = %q, should mention the line", parseErr.Error())
	}
}

func TestLoadFromReader(t *testing.T) {
	config, err := LoadFromReader(strings.NewReader(`profile = "verbose"`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["profile"] != "verbose" {
		t.Errorf("profile = %v, want verbose", config["profile"])
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"profile": "verbose",
		"display": map[string]any{"fps": int64(60), "headless": false},
	}
	src := map[string]any{
		"display": map[string]any{"fps": int64(30)},
		"log":     map[string]any{"level": "debug"},
	}

	got := DeepMerge(dst, src)

	tests := []struct {
		path string
		want any
	}{
		{"profile", "verbose"},
		{"display.fps", int64(30)},
		{"display.headless", false},
		{"log.level", "debug"},
	}
	for _, tt := range tests {
		if v, ok := GetByPath(got, tt.path); !ok || v != tt.want {
			t.Errorf("%s = %v, want %v", tt.path, v, tt.want)
		}
	}

	if merged := DeepMerge(nil, src); len(merged) != 2 {
		t.Errorf("DeepMerge(nil, src) has %d keys, want 2", len(merged))
	}
}

func TestSetByPath(t *testing.T) {
	data := map[string]any{"display": "scalar"}

	SetByPath(data, "display.fps", int64(10))
	SetByPath(data, "profile", "compact")

	if v, ok := GetByPath(data, "display.fps"); !ok || v != int64(10) {
		t.Errorf("display.fps = %v, want 10", v)
	}
	if data["profile"] != "compact" {
		t.Errorf("profile = %v, want compact", data["profile"])
	}
	if _, ok := GetByPath(data, "missing.key"); ok {
		t.Error("GetByPath(missing.key) should fail")
	}
}
