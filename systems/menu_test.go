package systems

import (
	"math"
	"testing"

	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestUpdateMenuClicks(t *testing.T) {
	tests := []struct {
		name        string
		click       components.Click
		wantPlaying bool
	}{
		{"left click on button", components.Click{X: 800, Y: 600, Button: ebiten.MouseButtonLeft}, true},
		{"left click on button corner", components.Click{X: 750, Y: 575, Button: ebiten.MouseButtonLeft}, true},
		{"left click just outside", components.Click{X: 850, Y: 600, Button: ebiten.MouseButtonLeft}, false},
		{"left click far away", components.Click{X: 10, Y: 10, Button: ebiten.MouseButtonLeft}, false},
		{"right click on button", components.Click{X: 800, Y: 600, Button: ebiten.MouseButtonRight}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestECS(t)
			input := getOrCreateInput(e)
			input.Clicks = append(input.Clicks, tt.click)

			UpdateMenu(e)

			if got := GetSession(e).Playing(); got != tt.wantPlaying {
				t.Errorf("playing = %v, want %v", got, tt.wantPlaying)
			}
		})
	}
}

func TestMenuDoesNotRunOncePlaying(t *testing.T) {
	e, _ := newTestECS(t)
	StartPlaying(e)
	StartPlaying(e)

	input := getOrCreateInput(e)
	input.Clicks = append(input.Clicks, components.Click{X: 800, Y: 600, Button: ebiten.MouseButtonLeft})
	WithMenuCheck(UpdateMenu)(e)

	if GetSession(e).Mode != cfg.ModePlaying {
		t.Errorf("mode = %v, want %v", GetSession(e).Mode, cfg.ModePlaying)
	}
}

func TestStartPlayingRestartsWalkCycle(t *testing.T) {
	e, c := newTestECS(t)
	anim := components.Animation.Get(factory.CreatePlayer(e, 0, 0, c.NowMillis()))
	anim.Animation.SetFrame(7)

	c.Advance(1000)
	StartPlaying(e)

	if anim.Frame() != 0 {
		t.Errorf("frame = %d, want 0", anim.Frame())
	}
	if anim.Animation.LastFrameTime() != 1000 {
		t.Errorf("lastFrameTime = %d, want 1000", anim.Animation.LastFrameTime())
	}
}

func TestTitlePulseReverses(t *testing.T) {
	e, _ := newTestECS(t)
	menu := GetOrCreateMenu(e)

	stepTitlePulse(menu, cfg.Menu.PulseSeconds/2)
	if menu.TitleAlpha >= 1 || menu.TitleAlpha <= cfg.Menu.PulseMinAlpha {
		t.Errorf("alpha mid-fade = %v", menu.TitleAlpha)
	}

	stepTitlePulse(menu, cfg.Menu.PulseSeconds)
	if math.Abs(float64(menu.TitleAlpha-cfg.Menu.PulseMinAlpha)) > 1e-6 {
		t.Errorf("alpha at end of fade = %v, want %v", menu.TitleAlpha, cfg.Menu.PulseMinAlpha)
	}
	if !menu.Brighten {
		t.Error("pulse did not reverse")
	}
}

func TestPremultiply(t *testing.T) {
	c := premultiply(cfg.White)
	if c != cfg.White {
		t.Errorf("opaque colour changed: %v", c)
	}

	half := cfg.White
	half.A = 128
	if got := premultiply(half); got.R != 128 || got.A != 128 {
		t.Errorf("premultiply(white@128) = %v", got)
	}
}
