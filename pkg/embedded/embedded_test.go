package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func reset() {
	dataFS = nil
	initialized = false
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/carousels.yaml": &fstest.MapFile{Data: []byte("carousels: {}\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/carousels.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/carousels.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()
	Init(testFS())

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		notFound bool
	}{
		{name: "plain path", path: "data/carousels.yaml"},
		{name: "dot prefix", path: "./data/carousels.yaml"},
		{name: "invalid prefix", path: "assets/carousels.yaml", wantErr: true},
		{name: "missing file", path: "data/missing.yaml", wantErr: true, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.notFound && !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Expected fs.ErrNotExist, got %v", err)
			}
			if !tt.wantErr && string(data) != "carousels: {}\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}

func TestExists(t *testing.T) {
	reset()
	defer reset()
	Init(testFS())

	if !Exists("data/carousels.yaml") {
		t.Error("Expected data/carousels.yaml to exist")
	}
	if Exists("data/other.yaml") {
		t.Error("Expected data/other.yaml to be missing")
	}
	if Exists("carousels.yaml") {
		t.Error("Paths without data/ prefix should not resolve")
	}
}
