package systems

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/shared/clock"
	"github.com/automoto/cloudcat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 1600
	testHeight = 1200
)

// newTestECS returns a world holding only a menu-mode session driven by a
// manual clock and a fixed seed.
func newTestECS(t *testing.T) (*ecs.ECS, *clock.Manual) {
	t.Helper()

	c := &clock.Manual{}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, c, rand.New(rand.NewSource(42)), testWidth, testHeight)
	return e, c
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}
