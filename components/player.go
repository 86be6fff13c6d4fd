package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	// Top-left of the unscaled sprite rect, always inside the canvas
	Position math.Vec2
}

var Player = donburi.NewComponentType[PlayerData]()
