package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	cfg "github.com/automoto/cloudcat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

type frameKey struct {
	path string
	rect image.Rectangle
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

// MustLoadImage decodes an embedded image once and caches it.
// A missing or undecodable asset is fatal.
func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image of the sheet at path.
// This prevents creating a new *ebiten.Image for the same tile every frame.
func (l *ImageLoader) GetFrame(path string, srcRect image.Rectangle) *ebiten.Image {
	key := frameKey{path: path, rect: srcRect}
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(path)
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	imageLoader = NewImageLoader()
)

func GetFrame(path string, srcRect image.Rectangle) *ebiten.Image {
	return imageLoader.GetFrame(path, srcRect)
}

func GetPlayerSheet() *ebiten.Image {
	return imageLoader.MustLoadImage(cfg.Player.SpriteSheet)
}

func GetCloudSheet() *ebiten.Image {
	return imageLoader.MustLoadImage(cfg.Clouds.SpriteSheet)
}

func GetBackground() *ebiten.Image {
	return imageLoader.MustLoadImage(cfg.Background)
}

// PreloadAll decodes every sheet up front so a bad asset fails at startup.
func PreloadAll() {
	GetBackground()
	GetPlayerSheet()
	GetCloudSheet()
}
