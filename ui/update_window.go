package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"autosplit/shell"
	"autosplit/update"
)

// newUpdateWindow builds the update-checker dialog for a fetched latest
// version. A startup check that found nothing newer returns nil: nothing
// to show in that case.
func newUpdateWindow(mw *MainWindow, latestVersion string, checkOnOpen bool) fyne.Window {
	newer := update.IsNewer(latestVersion, update.Version)
	if !newer && checkOnOpen {
		return nil
	}

	window := mw.app.NewWindow("Check for Updates")
	window.Resize(fyne.NewSize(360, 200))

	status := newVersionBanner(newer)

	versions := container.NewGridWithColumns(2,
		widget.NewLabel("Current version:"), widget.NewLabel(update.Version),
		widget.NewLabel("Latest version:"), widget.NewLabel(latestVersion),
	)

	items := []fyne.CanvasObject{status, versions}

	if newer {
		items = append(items, widget.NewButton("Open download page", func() {
			if err := shell.OpenURL(mw.checker.ReleasesURL()); err != nil {
				dialog.ShowError(err, window)
			}
			window.Close()
		}))

		if checkOnOpen {
			dontAskCheck := widget.NewCheck("Do not ask me again", nil)
			dontAskCheck.SetChecked(!mw.settings.CheckForUpdatesOnOpen)
			dontAskCheck.OnChanged = func(checked bool) {
				mw.settings.CheckForUpdatesOnOpen = !checked
			}
			items = append(items, dontAskCheck)
		}
	}

	items = append(items, widget.NewButton("Close", func() {
		window.Close()
	}))

	window.SetContent(container.NewVBox(items...))
	window.SetTitle(fmt.Sprintf("Check for Updates - v%s", latestVersion))

	return window
}
