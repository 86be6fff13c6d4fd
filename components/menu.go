package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	TitleTween *gween.Tween // Current half of the title pulse
	TitleAlpha float32
	Brighten   bool // Direction of the current half
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
