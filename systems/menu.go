package systems

import (
	"image"
	"image/color"

	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateMenu starts play when the select button is clicked inside the Play
// button, and animates the title pulse.
func UpdateMenu(e *ecs.ECS) {
	session := GetSession(e)
	input := getOrCreateInput(e)

	button := cfg.PlayButtonRect(int(session.Width), int(session.Height))
	for _, click := range input.Clicks {
		if clickHitsButton(click, button) {
			StartPlaying(e)
			return
		}
	}

	stepTitlePulse(GetOrCreateMenu(e), 1/float32(cfg.C.TPS))
}

func clickHitsButton(click components.Click, button image.Rectangle) bool {
	return click.Button == cfg.Input.SelectButton && image.Pt(click.X, click.Y).In(button)
}

// stepTitlePulse advances the title fade, reversing direction at each end.
func stepTitlePulse(menu *components.MenuData, dt float32) {
	alpha, done := menu.TitleTween.Update(dt)
	menu.TitleAlpha = alpha
	if done {
		menu.Brighten = !menu.Brighten
		menu.TitleTween = newTitleTween(menu.Brighten)
	}
}

func newTitleTween(brighten bool) *gween.Tween {
	from, to := float32(1), cfg.Menu.PulseMinAlpha
	if brighten {
		from, to = to, from
	}
	return gween.New(from, to, cfg.Menu.PulseSeconds, ease.InOutQuad)
}

// DrawMenuTitle renders the game title centred near the top of the canvas.
func DrawMenuTitle(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	face := fonts.Title.Get()

	width := screen.Bounds().Dx()
	titleWidth := font.MeasureString(face, cfg.Menu.Title).Round()
	x := (width - titleWidth) / 2

	c := cfg.Menu.TitleColor
	c.A = uint8(float32(255) * menu.TitleAlpha)
	text.Draw(screen, cfg.Menu.Title, face, x, int(cfg.Menu.TitleY), premultiply(c))
}

// premultiply converts a straight-alpha colour for ebiten's colour model.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			TitleTween: newTitleTween(false),
			TitleAlpha: 1,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
