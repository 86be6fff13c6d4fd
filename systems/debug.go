package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugCloudColor  = color.RGBA{0, 255, 255, 255} // Cyan
	debugPlayerColor = color.RGBA{0, 0, 255, 255}   // Blue
)

// UpdateDebug flips the debug overlay on the toggle key.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleDebug).JustPressed {
		return
	}
	session := GetSession(ecs)
	session.Debug = !session.Debug
}

// DrawDebug outlines every sprite's drawn rect and prints the loop stats.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if !session.Debug {
		return
	}

	clouds := 0
	tile := float32(cfg.Clouds.TileSize) * float32(cfg.Clouds.RenderScale)
	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		vector.StrokeRect(screen, float32(cloud.X), float32(cloud.Y), tile, tile, 1, debugCloudColor, false)
		clouds++
	})

	if session.Playing() {
		components.Player.Each(ecs.World, func(e *donburi.Entry) {
			x, y, size := playerDrawRect(components.Player.Get(e))
			vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, debugPlayerColor, false)
		})
	}

	items := heldItemCount(ecs.World)
	ebitenutil.DebugPrintAt(screen, debugStats(ebiten.ActualTPS(), session.Mode, clouds, items), 4, 4)
}

// heldItemCount totals every inventory in the world. The inventory keys
// work in both modes, so this ignores the session mode.
func heldItemCount(w donburi.World) int {
	items := 0
	components.Inventory.Each(w, func(e *donburi.Entry) {
		items += components.Inventory.Get(e).Len()
	})
	return items
}

// playerDrawRect returns the top-left and edge of the scaled player sprite.
func playerDrawRect(player *components.PlayerData) (x, y, size float64) {
	half := float64(cfg.Player.SpriteSize) / 2
	size = float64(cfg.Player.SpriteSize) * cfg.Player.RenderScale
	return player.Position.X + half - size/2, player.Position.Y + half - size/2, size
}

func debugStats(tps float64, mode cfg.ModeID, clouds, items int) string {
	return fmt.Sprintf("TPS: %0.1f\nMode: %s\nClouds: %d\nItems: %d", tps, mode, clouds, items)
}
