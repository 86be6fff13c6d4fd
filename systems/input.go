package systems

import (
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Clicks = input.Clicks[:0]

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	for _, btn := range cfg.Input.ClickButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			x, y := ebiten.CursorPosition()
			input.Clicks = append(input.Clicks, components.Click{X: x, Y: y, Button: btn})
		}
	}

	input.Quit = ebiten.IsWindowBeingClosed()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed is derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:     curr,
		JustPressed: curr && !prev,
	}
}

// MoveVector returns the continuous movement direction from the held
// directional actions: x is right minus left, y is down minus up.
func MoveVector(input *components.InputData) (x, y float64) {
	if input.Current[cfg.ActionMoveRight] {
		x++
	}
	if input.Current[cfg.ActionMoveLeft] {
		x--
	}
	if input.Current[cfg.ActionMoveDown] {
		y++
	}
	if input.Current[cfg.ActionMoveUp] {
		y--
	}
	return x, y
}
