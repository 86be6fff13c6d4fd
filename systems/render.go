package systems

import (
	"image"

	"github.com/automoto/cloudcat/assets"
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground stretches the sky image over the whole canvas.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	bg := assets.GetBackground()
	bw, bh := bg.Bounds().Dx(), bg.Bounds().Dy()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	screen.DrawImage(bg, drawOp)
}

// playerSourceRect locates a frame of a directional row on the player sheet.
// Offsets wrap so an out-of-range frame or row never leaves the sheet.
func playerSourceRect(frame int, row cfg.Row, size, sheetWidth, sheetHeight int) image.Rectangle {
	sx := (frame * size) % sheetWidth
	sy := (int(row) * size) % sheetHeight
	return image.Rect(sx, sy, sx+size, sy+size)
}

// DrawPlayer renders each player's current frame scaled up and centred on
// its unscaled sprite rect.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	sheet := assets.GetPlayerSheet()
	size := cfg.Player.SpriteSize
	scale := cfg.Player.RenderScale

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		src := playerSourceRect(anim.Frame(), anim.Row, size, sheet.Bounds().Dx(), sheet.Bounds().Dy())
		img := assets.GetFrame(cfg.Player.SpriteSheet, src)

		half := float64(size) / 2
		drawOp.GeoM.Reset()
		// Scale around the sprite centre
		drawOp.GeoM.Translate(-half, -half)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(player.Position.X+half, player.Position.Y+half)
		screen.DrawImage(img, drawOp)
	})
}
