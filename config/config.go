package config

import (
	"image"
	"image/color"
)

// Config holds general game configuration
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TPS         int     `yaml:"tps"`
	Title       string  `yaml:"title"`
	WindowScale float64 `yaml:"windowScale"` // Window size relative to the logical canvas
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"moveSpeed"` // Units per tick when a movement key is held

	// Animation
	FrameCount  int     `yaml:"frameCount"` // Frames per directional row
	FrameDelay  int64   `yaml:"frameDelay"` // Milliseconds between frame advances
	InitialRow  Row     `yaml:"initialRow"` // Facing before any input
	SpriteSize  int     `yaml:"spriteSize"` // Source tile edge in pixels
	RenderScale float64 `yaml:"renderScale"`

	SpriteSheet string `yaml:"spriteSheet"`
}

// CloudConfig contains background cloud configuration values
type CloudConfig struct {
	Count            int     `yaml:"count"`            // Target population of the field
	MinDistance      float64 `yaml:"minDistance"`      // Minimum horizontal spacing at population time
	MaxSpawnAttempts int     `yaml:"maxSpawnAttempts"` // Resample budget per cloud before spacing is relaxed
	MaxSpeed         float64 `yaml:"maxSpeed"`
	DepthDivisor     float64 `yaml:"depthDivisor"`
	FrameCount       int     `yaml:"frameCount"` // Cloud variants on the sheet
	FrameDelay       int64   `yaml:"frameDelay"` // Milliseconds, tracked but does not change the frame
	TileSize         int     `yaml:"tileSize"`
	RenderScale      float64 `yaml:"renderScale"`

	// SpriteWidth is the horizontal extent used for the off-screen test.
	// Zero means TileSize * RenderScale. 704, the whole sheet width, keeps
	// clouds off-screen longer before they re-enter.
	SpriteWidth float64 `yaml:"spriteWidth"`

	// RespawnX is where a recycled cloud re-enters. Zero means the canvas width.
	RespawnX float64 `yaml:"respawnX"`

	SpriteSheet string `yaml:"spriteSheet"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title           string     `yaml:"title"`
	TitleY          float64    `yaml:"titleY"`
	ButtonLabel     string     `yaml:"buttonLabel"`
	ButtonWidth     int        `yaml:"buttonWidth"`
	ButtonHeight    int        `yaml:"buttonHeight"`
	TitleColor      color.RGBA `yaml:"-"`
	ButtonColor     color.RGBA `yaml:"-"`
	ButtonTextColor color.RGBA `yaml:"-"`
	PulseSeconds    float32    `yaml:"pulseSeconds"` // Duration of one half of the title pulse
	PulseMinAlpha   float32    `yaml:"pulseMinAlpha"`
}

// InventoryConfig contains the demo inventory actions
type InventoryConfig struct {
	DemoItem string `yaml:"demoItem"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Clouds CloudConfig
var Menu MenuConfig
var Inventory InventoryConfig
var Background string

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Navy  = color.RGBA{R: 30, G: 40, B: 80, A: 255}
)

// PlayButtonRect returns the clickable region of the menu's Play button,
// centred on a canvas of the given size.
func PlayButtonRect(width, height int) image.Rectangle {
	x := width/2 - Menu.ButtonWidth/2
	y := height/2 - Menu.ButtonHeight/2
	return image.Rect(x, y, x+Menu.ButtonWidth, y+Menu.ButtonHeight)
}

// CloudSpriteWidth returns the extent used to decide a cloud has left the canvas.
func CloudSpriteWidth() float64 {
	if Clouds.SpriteWidth > 0 {
		return Clouds.SpriteWidth
	}
	return float64(Clouds.TileSize) * Clouds.RenderScale
}

func init() {
	C = &Config{
		Width:       1600,
		Height:      1200,
		TPS:         60,
		Title:       "Pokemon-style Game",
		WindowScale: 0.5,
	}

	Player = PlayerConfig{
		MoveSpeed:   6,
		FrameCount:  12,
		FrameDelay:  150,
		InitialRow:  RowDown,
		SpriteSize:  64,
		RenderScale: 2,
		SpriteSheet: "images/cat01.png",
	}

	Clouds = CloudConfig{
		Count:            10,
		MinDistance:      100,
		MaxSpawnAttempts: 200,
		MaxSpeed:         5,
		DepthDivisor:     4,
		FrameCount:       22,
		FrameDelay:       150,
		TileSize:         32,
		RenderScale:      6,
		SpriteSheet:      "images/cloudsheet.png",
	}

	Menu = MenuConfig{
		Title:           "Pokemon-style Game",
		TitleY:          360,
		ButtonLabel:     "Play",
		ButtonWidth:     100,
		ButtonHeight:    50,
		TitleColor:      Navy,
		ButtonColor:     White,
		ButtonTextColor: Black,
		PulseSeconds:    1.2,
		PulseMinAlpha:   0.45,
	}

	Inventory = InventoryConfig{
		DemoItem: "Potion",
	}

	Background = "images/sky.png"
}
