package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyOverridesOnlyPresentKeys(t *testing.T) {
	window := Config{Width: 1600, Height: 1200, TPS: 60, Title: "default"}
	clouds := CloudConfig{Count: 10, MinDistance: 100, MaxSpeed: 5, DepthDivisor: 4, FrameCount: 22, TileSize: 32, RenderScale: 6}

	data := []byte(`
window:
  title: custom
clouds:
  count: 4
  respawnX: 1700
`)
	if err := Apply(data, &File{Window: &window, Clouds: &clouds}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if window.Title != "custom" {
		t.Errorf("title = %q, want custom", window.Title)
	}
	if window.Width != 1600 || window.Height != 1200 || window.TPS != 60 {
		t.Errorf("untouched window keys changed: %+v", window)
	}
	if clouds.Count != 4 || clouds.RespawnX != 1700 {
		t.Errorf("clouds = %+v, want count 4 respawnX 1700", clouds)
	}
	if clouds.MinDistance != 100 || clouds.MaxSpeed != 5 {
		t.Errorf("untouched cloud keys changed: %+v", clouds)
	}
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"zero tps", "window:\n  tps: 0\n"},
		{"zero cloud frames", "clouds:\n  frameCount: 0\n"},
		{"zero cloud tile", "clouds:\n  tileSize: 0\n"},
		{"zero cloud scale", "clouds:\n  renderScale: 0\n"},
		{"zero depth divisor", "clouds:\n  depthDivisor: 0\n"},
		{"negative cloud count", "clouds:\n  count: -1\n"},
		{"zero player frames", "player:\n  frameCount: 0\n"},
		{"zero player scale", "player:\n  renderScale: 0\n"},
		{"malformed", "window: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := *C
			player := Player
			clouds := Clouds
			target := &File{Window: &window, Player: &player, Clouds: &clouds}

			if err := Apply([]byte(tt.yaml), target); err == nil {
				t.Errorf("Apply(%q) accepted", tt.yaml)
			}
		})
	}
}

func TestApplyAcceptsDefaults(t *testing.T) {
	window := *C
	player := Player
	clouds := Clouds
	menu := Menu
	inventory := Inventory
	target := &File{Window: &window, Player: &player, Clouds: &clouds, Menu: &menu, Inventory: &inventory}

	if err := Apply([]byte("clouds:\n  count: 0\n"), target); err != nil {
		t.Errorf("Apply with defaults: %v", err)
	}
}

func TestLoad(t *testing.T) {
	if err := Load(""); err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}

	saved := Inventory
	t.Cleanup(func() { Inventory = saved })

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("inventory:\n  demoItem: Ether\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Inventory.DemoItem != "Ether" {
		t.Errorf("DemoItem = %q, want Ether", Inventory.DemoItem)
	}
}

func TestPlayButtonRectCentred(t *testing.T) {
	r := PlayButtonRect(1600, 1200)
	if r.Min.X != 750 || r.Min.Y != 575 || r.Dx() != Menu.ButtonWidth || r.Dy() != Menu.ButtonHeight {
		t.Errorf("PlayButtonRect = %v", r)
	}
}

func TestCloudSpriteWidth(t *testing.T) {
	saved := Clouds
	t.Cleanup(func() { Clouds = saved })

	if got := CloudSpriteWidth(); got != 192 {
		t.Errorf("default width = %v, want 192", got)
	}
	Clouds.SpriteWidth = 704
	if got := CloudSpriteWidth(); got != 704 {
		t.Errorf("override width = %v, want 704", got)
	}
}

func TestRowString(t *testing.T) {
	if RowUpLeft.String() == "" || ModePlaying.String() != "playing" {
		t.Errorf("names: %q %q", RowUpLeft.String(), ModePlaying.String())
	}
}
