package scenes

import (
	"image/color"
	"math/rand"
	"sync"

	"github.com/automoto/cloudcat/assets"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/shared/clock"
	"github.com/automoto/cloudcat/systems"
	"github.com/automoto/cloudcat/systems/factory"
	"github.com/automoto/cloudcat/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SkyScene is the whole game: the menu and the playing field share one
// world so the clouds keep drifting across the mode change.
type SkyScene struct {
	ecs    *ecs.ECS
	menuUI *ui.MenuUI
	clock  clock.Clock
	rng    *rand.Rand
	once   sync.Once
}

// NewSkyScene creates the scene. It is configured lazily on the first Update.
func NewSkyScene(c clock.Clock, rng *rand.Rand) *SkyScene {
	return &SkyScene{clock: c, rng: rng}
}

func (ss *SkyScene) Update() error {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if systems.QuitRequested(ss.ecs) {
		return ebiten.Termination
	}

	if !systems.GetSession(ss.ecs).Playing() {
		ss.menuUI.Update()
	}
	return nil
}

func (ss *SkyScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SkyScene) configure() {
	// Decode every sheet now so a broken asset fails before play
	assets.PreloadAll()

	ecs := ecs.NewECS(donburi.NewWorld())

	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	factory.CreateSession(ecs, ss.clock, ss.rng, width, height)
	now := ss.clock.NowMillis()
	factory.CreatePlayer(ecs, 0, 0, now)
	factory.PopulateClouds(ecs, cfg.Clouds.Count, width, height, ss.rng, now)

	ss.menuUI = ui.NewMenuUI()

	// Input first; everything below reads it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateInventory)
	ecs.AddSystem(systems.WithMenuCheck(systems.UpdateMenu))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.UpdateClouds)

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, ss.drawMenu)
	ecs.AddRenderer(cfg.Default, systems.DrawClouds)
	ecs.AddRenderer(cfg.Default, ss.drawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ss.ecs = ecs
}

func (ss *SkyScene) drawMenu(e *ecs.ECS, screen *ebiten.Image) {
	if systems.GetSession(e).Playing() {
		return
	}
	ss.menuUI.Draw(screen)
	systems.DrawMenuTitle(e, screen)
}

func (ss *SkyScene) drawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetSession(e).Playing() {
		return
	}
	systems.DrawPlayer(e, screen)
}
