package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"autosplit/update"
)

// newAboutWindow builds the about box.
func newAboutWindow(myApp fyne.App) fyne.Window {
	window := myApp.NewWindow("About AutoSplit")
	window.Resize(fyne.NewSize(320, 180))

	title := widget.NewLabel("AutoSplit")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	version := widget.NewLabel(fmt.Sprintf("Version: %s", update.Version))
	version.Alignment = fyne.TextAlignCenter

	projectURL, _ := url.Parse(fmt.Sprintf("https://github.com/%s", update.GitHubRepository))
	link := widget.NewHyperlink("Project page", projectURL)
	link.Alignment = fyne.TextAlignCenter

	window.SetContent(container.NewVBox(
		title,
		version,
		link,
	))

	return window
}
