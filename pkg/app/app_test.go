package app

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/truview/pkg/embedded"
	"github.com/gonewx/truview/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockKeys 只在下一次查询时报告指定按键
type mockKeys struct {
	pressed map[ebiten.Key]bool
}

func (m *mockKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return m.pressed[key]
}

func (m *mockKeys) press(key ebiten.Key) {
	m.pressed = map[ebiten.Key]bool{key: true}
}

var shippedConfig = filepath.Join("..", "..", "data", "carousels.yaml")

func newTestApp(t *testing.T, cfg Config) (*App, *mockKeys) {
	t.Helper()
	keys := &mockKeys{}
	a, err := NewAppWithInput(cfg, keys)
	if err != nil {
		t.Fatalf("NewAppWithInput() failed: %v", err)
	}
	t.Cleanup(a.GetSceneManager().Close)
	return a, keys
}

func TestNewApp_LoadsHomeScene(t *testing.T) {
	a, _ := newTestApp(t, Config{ConfigPath: shippedConfig})

	home, ok := a.GetSceneManager().GetCurrentScene().(*scenes.HomeScene)
	if !ok {
		t.Fatalf("current scene is %T, want *scenes.HomeScene", a.GetSceneManager().GetCurrentScene())
	}
	if _, ok := home.Carousel("testimonials"); !ok {
		t.Error("home scene should include the testimonials carousel")
	}
	want := []string{"featured", "hero", "team", "testimonials"}
	if got := a.Variants(); len(got) != len(want) {
		t.Fatalf("Variants() = %v, want %v", got, want)
	}
	for i, name := range want {
		if a.Variants()[i] != name {
			t.Errorf("Variants()[%d] = %q, want %q", i, a.Variants()[i], name)
		}
	}
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing config", cfg: Config{ConfigPath: "does/not/exist.yaml"}},
		{name: "unknown variant", cfg: Config{ConfigPath: shippedConfig, Variant: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAppWithInput(tt.cfg, &mockKeys{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewApp_EmbeddedFallback(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/embedded.yaml": &fstest.MapFile{Data: []byte(`
carousels:
  featured:
    itemWidth: 300
    gap: 24
    edge: clamp
`)},
	})
	defer embedded.Init(nil)

	a, _ := newTestApp(t, Config{ConfigPath: "data/embedded.yaml", Variant: "featured"})
	if got := a.Variants(); len(got) != 1 || got[0] != "featured" {
		t.Errorf("Variants() = %v, want [featured]", got)
	}
}

func TestHandleVariantKeys(t *testing.T) {
	a, keys := newTestApp(t, Config{ConfigPath: shippedConfig})
	sm := a.GetSceneManager()
	first := sm.GetCurrentScene().(*scenes.HomeScene)

	// 2 -> 第二个变体（hero）
	keys.press(ebiten.Key2)
	a.handleVariantKeys()
	if sm.CurrentName() != "hero" {
		t.Fatalf("CurrentName() = %q, want hero", sm.CurrentName())
	}
	if !first.Closed() {
		t.Error("previous scene should be closed on switch")
	}

	// 超出变体数量的数字键无效
	keys.press(ebiten.Key9)
	a.handleVariantKeys()
	if sm.CurrentName() != "hero" {
		t.Errorf("Key9 switched to %q", sm.CurrentName())
	}

	// 0 -> 完整首页
	keys.press(ebiten.Key0)
	a.handleVariantKeys()
	if sm.CurrentName() != "" {
		t.Errorf("CurrentName() = %q, want full home page", sm.CurrentName())
	}
}

func TestLayout(t *testing.T) {
	a, _ := newTestApp(t, Config{ConfigPath: shippedConfig, WindowWidth: 800, WindowHeight: 600})

	if w, h := a.Layout(0, 0); w != 800 || h != 600 {
		t.Errorf("Layout(0, 0) = %dx%d, want window size 800x600", w, h)
	}
	if w, h := a.Layout(1024, 768); w != 1024 || h != 768 {
		t.Errorf("Layout(1024, 768) = %dx%d", w, h)
	}
}
