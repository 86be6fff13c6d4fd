package systems

import (
	"log"

	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton. Scenes create it before any
// system runs, so a missing session is a wiring bug.
func GetSession(e *ecs.ECS) *components.SessionData {
	ent, ok := components.Session.First(e.World)
	if !ok {
		panic("session entity not found")
	}
	return components.Session.Get(ent)
}

// WithPlayingCheck wraps a system to run only once play has started.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetSession(e).Playing() {
			return
		}
		system(e)
	}
}

// WithMenuCheck wraps a system to run only while the menu is showing.
func WithMenuCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetSession(e).Playing() {
			return
		}
		system(e)
	}
}

// StartPlaying leaves the menu and restarts every walk cycle on the
// current clock reading. There is no way back.
func StartPlaying(e *ecs.ECS) {
	session := GetSession(e)
	if session.Playing() {
		return
	}
	session.Mode = cfg.ModePlaying
	log.Printf("Mode changed: %s -> %s", cfg.ModeMenu, cfg.ModePlaying)

	now := session.Clock.NowMillis()
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		components.Animation.Get(entry).Animation.Restart(now)
	})
}
