package components

import (
	"github.com/automoto/cloudcat/assets/animations"
	"github.com/automoto/cloudcat/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the directional sprite state of a character: which row of
// the sheet it faces and which frame of that row is showing.
type AnimationData struct {
	Animation *animations.Animation
	Row       config.Row
	Idle      bool // No movement input this tick; frame held at 0
}

// Frame returns the current column on the sheet.
func (a *AnimationData) Frame() int {
	if a.Animation == nil {
		return 0
	}
	return a.Animation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
