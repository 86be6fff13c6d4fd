package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Cloud  = donburi.NewTag().SetName("Cloud")
)
