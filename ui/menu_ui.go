package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/cloudcat/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu. The button is
// centred on the canvas at the configured size, so it covers exactly
// cfg.PlayButtonRect; clicks are resolved by systems.UpdateMenu.
type MenuUI struct {
	UI *ebitenui.UI

	playButton *widget.Button
	buttonFace text.Face
}

// NewMenuUI creates a new menu UI with ebitenui
func NewMenuUI() *MenuUI {
	mui := &MenuUI{}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	mui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
}

func (mui *MenuUI) buildUI() {
	// Transparent root so the sky shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	mui.playButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(cfg.Menu.ButtonLabel, &mui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.ButtonTextColor,
			Hover:   color.RGBA{40, 40, 90, 255},
			Pressed: color.RGBA{80, 80, 80, 255},
		}),
	)
	rootContainer.AddChild(mui.playButton)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Menu.ButtonColor)
	hover := image.NewNineSliceColor(color.RGBA{235, 240, 255, 255})
	pressed := image.NewNineSliceColor(color.RGBA{200, 205, 220, 255})
	disabled := image.NewNineSliceColor(color.RGBA{120, 120, 120, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
