package components

import (
	cfg "github.com/automoto/cloudcat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this frame
}

// Click is a pointer press in canvas coordinates
type Click struct {
	X, Y   int
	Button ebiten.MouseButton
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Clicks   []Click               // Pointer presses that began this frame
	Quit     bool                  // Window close was requested this frame
}

var Input = donburi.NewComponentType[InputData]()
