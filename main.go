package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/fonts"
	"github.com/automoto/cloudcat/scenes"
	"github.com/automoto/cloudcat/shared/clock"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(seed int64) *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewSkyScene(clock.NewMonotonic(), rand.New(rand.NewSource(seed))),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for cloud placement")
	flag.Parse()

	if err := cfg.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Window settings come from config; nothing is read from the environment
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowSize(int(float64(cfg.C.Width)*cfg.C.WindowScale), int(float64(cfg.C.Height)*cfg.C.WindowScale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame(*seed)); err != nil {
		log.Fatal(err)
	}
}
