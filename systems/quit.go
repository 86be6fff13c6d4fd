package systems

import (
	"log"

	cfg "github.com/automoto/cloudcat/config"
	"github.com/yohamta/donburi/ecs"
)

// QuitRequested reports whether the window was closed or the quit key
// pressed this tick.
func QuitRequested(e *ecs.ECS) bool {
	input := getOrCreateInput(e)
	if input.Quit || GetAction(input, cfg.ActionQuit).JustPressed {
		log.Println("Quit requested")
		return true
	}
	return false
}
