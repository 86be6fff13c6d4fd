package factory

import (
	"math/rand"

	"github.com/automoto/cloudcat/archetypes"
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/shared/clock"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton in menu mode.
func CreateSession(ecs *ecs.ECS, c clock.Clock, rng *rand.Rand, width, height float64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Mode:   cfg.ModeMenu,
		Clock:  c,
		Rand:   rng,
		Width:  width,
		Height: height,
	})
	return session
}
