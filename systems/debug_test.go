package systems

import (
	"strings"
	"testing"

	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateDebugToggles(t *testing.T) {
	e, _ := newTestECS(t)

	press(e, cfg.ActionToggleDebug)
	UpdateDebug(e)
	if !GetSession(e).Debug {
		t.Fatal("overlay not enabled")
	}

	// Holding the key does not flip it back
	press(e, cfg.ActionToggleDebug)
	UpdateDebug(e)
	if !GetSession(e).Debug {
		t.Fatal("held key toggled again")
	}

	press(e)
	press(e, cfg.ActionToggleDebug)
	UpdateDebug(e)
	if GetSession(e).Debug {
		t.Error("overlay not disabled")
	}
}

func TestHeldItemCountInMenu(t *testing.T) {
	e, c := newTestECS(t)
	factory.CreatePlayer(e, 0, 0, c.NowMillis())

	press(e, cfg.ActionOpenInventory)
	UpdateInventory(e)

	if GetSession(e).Playing() {
		t.Fatal("session left the menu")
	}
	if got := heldItemCount(e.World); got != 1 {
		t.Errorf("heldItemCount = %d, want 1", got)
	}
}

func TestPlayerDrawRect(t *testing.T) {
	x, y, size := playerDrawRect(&components.PlayerData{Position: dmath.Vec2{X: 100, Y: 50}})
	if x != 68 || y != 18 || size != 128 {
		t.Errorf("playerDrawRect = (%v, %v, %v), want (68, 18, 128)", x, y, size)
	}
}

func TestDebugStats(t *testing.T) {
	s := debugStats(59.94, cfg.ModePlaying, 10, 2)
	for _, want := range []string{"TPS: 59.9", "Mode: playing", "Clouds: 10", "Items: 2"} {
		if !strings.Contains(s, want) {
			t.Errorf("stats %q missing %q", s, want)
		}
	}
}
