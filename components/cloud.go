package components

import "github.com/yohamta/donburi"

// CloudData is a single background cloud. Speed is fixed for the cloud's
// whole lifetime, including after it is recycled.
type CloudData struct {
	X, Y          float64
	Frame         int // Any value; wrapped onto the sheet when drawn
	Speed         float64
	LastFrameTime int64
}

var Cloud = donburi.NewComponentType[CloudData]()
