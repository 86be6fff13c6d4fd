package components

import (
	"math/rand"

	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/shared/clock"
	"github.com/yohamta/donburi"
)

// SessionData is the per-scene singleton holding the game mode and the
// collaborators every system needs. Width and Height are the canvas
// dimensions; entities never query the display for them.
type SessionData struct {
	Mode   cfg.ModeID
	Clock  clock.Clock
	Rand   *rand.Rand
	Width  float64
	Height float64
	Debug  bool // Sprite outlines and loop stats
}

// Playing reports whether the session has left the menu.
func (s *SessionData) Playing() bool {
	return s.Mode == cfg.ModePlaying
}

var Session = donburi.NewComponentType[SessionData]()
