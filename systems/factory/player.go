package factory

import (
	"github.com/automoto/cloudcat/archetypes"
	"github.com/automoto/cloudcat/assets/animations"
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, nowMillis int64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Position: math.Vec2{X: x, Y: y},
	})
	components.Animation.SetValue(player, components.AnimationData{
		Animation: animations.NewAnimation(cfg.Player.FrameCount, cfg.Player.FrameDelay, nowMillis),
		Row:       cfg.Player.InitialRow,
		Idle:      true,
	})
	components.Inventory.SetValue(player, components.InventoryData{})

	return player
}
