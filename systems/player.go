package systems

import (
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this tick's movement vector and clock reading into
// every player's position and animation state.
func UpdatePlayer(ecs *ecs.ECS) {
	session := GetSession(ecs)
	input := getOrCreateInput(ecs)
	moveX, moveY := MoveVector(input)
	now := session.Clock.NowMillis()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)
		updatePlayerFromInput(player, anim, moveX, moveY, now, session.Width, session.Height)
	})
}

// updatePlayerFromInput moves the player by the input vector scaled to the
// configured speed, wraps the position onto the canvas, picks the facing row
// from the vector's signs and steps the walk cycle. An idle player shows the
// first frame of its current row.
func updatePlayerFromInput(player *components.PlayerData, anim *components.AnimationData, x, y float64, nowMillis int64, width, height float64) {
	moving := x*x+y*y > 0
	anim.Idle = !moving

	if moving {
		x, y = gamemath.ScaleToLength(x, y, cfg.Player.MoveSpeed)
		player.Position.X += x
		player.Position.Y += y
	}
	player.Position.X = gamemath.Wrap(player.Position.X, width)
	player.Position.Y = gamemath.Wrap(player.Position.Y, height)

	anim.Row = gamemath.RowForVector(x, y, anim.Row)

	anim.Animation.Update(nowMillis)
	if anim.Idle {
		anim.Animation.Hold()
	}
}
