package systems

import (
	"image"
	"math/rand"

	"github.com/automoto/cloudcat/assets"
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/systems/factory"
	"github.com/automoto/cloudcat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var cloudDrawOp = &ebiten.DrawImageOptions{}

// UpdateClouds scrolls every cloud left. A cloud that has fully left the
// canvas is recycled in place, so the population never changes here.
func UpdateClouds(ecs *ecs.ECS) {
	session := GetSession(ecs)
	now := session.Clock.NowMillis()

	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		advanceCloud(cloud, now, session.Width, session.Height, session.Rand)
	})
}

func advanceCloud(cloud *components.CloudData, nowMillis int64, width, height float64, rng *rand.Rand) {
	if nowMillis-cloud.LastFrameTime >= cfg.Clouds.FrameDelay {
		cloud.LastFrameTime = nowMillis
	}

	cloud.X -= cloud.Speed

	if cloud.X+cfg.CloudSpriteWidth() < 0 {
		recycleCloud(cloud, width, height, rng)
	}
}

// recycleCloud re-enters the cloud from the right with a new look and height.
// Speed is deliberately left alone.
func recycleCloud(cloud *components.CloudData, width, height float64, rng *rand.Rand) {
	cloud.X = cfg.Clouds.RespawnX
	if cloud.X == 0 {
		cloud.X = width
	}
	cloud.Frame = factory.RandomCloudFrame(rng)
	cloud.Y = factory.RandomCloudY(height, rng)
}

// cloudSourceRect maps a frame index onto a tile of the cloud sheet.
func cloudSourceRect(frame, tileSize, sheetWidth int) image.Rectangle {
	sx := (frame * tileSize) % sheetWidth
	if sx < 0 {
		sx += sheetWidth
	}
	return image.Rect(sx, 0, sx+tileSize, tileSize)
}

// DrawClouds renders every cloud scaled up from its sheet tile.
func DrawClouds(ecs *ecs.ECS, screen *ebiten.Image) {
	sheetWidth := assets.GetCloudSheet().Bounds().Dx()

	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		src := cloudSourceRect(cloud.Frame, cfg.Clouds.TileSize, sheetWidth)
		img := assets.GetFrame(cfg.Clouds.SpriteSheet, src)

		cloudDrawOp.GeoM.Reset()
		cloudDrawOp.GeoM.Scale(cfg.Clouds.RenderScale, cfg.Clouds.RenderScale)
		cloudDrawOp.GeoM.Translate(cloud.X, cloud.Y)
		screen.DrawImage(img, cloudDrawOp)
	})
}
