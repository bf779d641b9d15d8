package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// versionBanner is the colored outcome line of the update-checker window:
// red when a newer release exists, green when the running version is
// current.
type versionBanner struct {
	widget.BaseWidget
	message string
	fill    color.Color
	ink     color.Color
}

func newVersionBanner(newer bool) *versionBanner {
	banner := &versionBanner{}
	if newer {
		banner.message = "A newer version is available!"
		banner.fill = color.NRGBA{R: 255, A: 100}
		banner.ink = color.White
	} else {
		banner.message = "You are on the latest AutoSplit version."
		banner.fill = color.NRGBA{G: 255, A: 100}
		banner.ink = color.Black
	}
	banner.ExtendBaseWidget(banner)
	return banner
}

// CreateRenderer implements fyne.Widget
func (b *versionBanner) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.message, b.ink)
	text.Alignment = fyne.TextAlignCenter
	background := canvas.NewRectangle(b.fill)
	return widget.NewSimpleRenderer(container.NewStack(background, text))
}
