package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionOpenInventory
	ActionDropItem
	ActionQuit
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to a single action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Mouse buttons reported as click events
	ClickButtons []ebiten.MouseButton
	// Button that activates menu widgets
	SelectButton ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ClickButtons: []ebiten.MouseButton{
			ebiten.MouseButtonLeft,
			ebiten.MouseButtonRight,
			ebiten.MouseButtonMiddle,
		},
		SelectButton: ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			ActionOpenInventory: {
				Keys: []ebiten.Key{ebiten.KeyE},
			},
			ActionDropItem: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
