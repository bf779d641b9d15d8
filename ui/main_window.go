package ui

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"autosplit/capture"
	"autosplit/hotkeys"
	"autosplit/models"
	"autosplit/shell"
	"autosplit/splitimage"
	"autosplit/storage"
	"autosplit/update"
)

// MainWindow is the application shell: it owns the settings record, the
// capture manager and the menu entries that launch the auxiliary windows.
type MainWindow struct {
	app    fyne.App
	window fyne.Window

	storage        *storage.Manager
	settings       *models.Settings
	captureManager *capture.Manager
	enumerator     capture.Enumerator
	checker        *update.Checker
	binder         hotkeys.Binder

	splitImage *splitimage.Image
	resetImage *splitimage.Image

	splitDirLabel         *widget.Label
	currentThresholdLabel *widget.Label
	resetThresholdLabel   *widget.Label

	settingsWindow *SettingsWindow
	aboutWindow    fyne.Window
	updateWindow   fyne.Window
}

// NewMainWindow creates the application shell. The enumerator and binder
// are the platform collaborators for device listing and hotkey capture.
func NewMainWindow(enumerator capture.Enumerator, binder hotkeys.Binder) *MainWindow {
	myApp := app.New()
	myApp.SetIcon(theme.MediaVideoIcon())
	return newMainWindow(myApp, storage.NewManager(), enumerator, binder)
}

func newMainWindow(myApp fyne.App, store *storage.Manager, enumerator capture.Enumerator, binder hotkeys.Binder) *MainWindow {
	window := myApp.NewWindow("AutoSplit")
	window.Resize(fyne.NewSize(620, 420))
	window.SetMaster()

	mw := &MainWindow{
		app:            myApp,
		window:         window,
		storage:        store,
		captureManager: capture.NewManager(capture.Methods),
		enumerator:     enumerator,
		checker:        update.NewChecker(),
		binder:         binder,
	}

	mw.loadData()
	mw.captureManager.OnMethodChanged = func(method capture.Method) {
		// Reinitialization hook of the frame-grabbing subsystem
		log.Printf("Capture method changed to %s", method.ID)
	}
	mw.captureManager.ChangeMethod(mw.settings.CaptureMethod)

	mw.setupUI()

	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	if mw.settings.CheckForUpdatesOnOpen {
		mw.checkForUpdates(true)
	}
	mw.window.ShowAndRun()
}

// loadData loads the user profile from storage
func (mw *MainWindow) loadData() {
	var err error

	mw.settings, err = mw.storage.LoadSettings()
	if err != nil {
		dialog.ShowError(err, mw.window)
		mw.settings = models.DefaultSettings()
	}

	mw.reloadSplitImages()
}

// reloadSplitImages rescans the split image directory and repicks the
// current split and reset images the threshold labels derive from.
func (mw *MainWindow) reloadSplitImages() {
	mw.splitImage = nil
	mw.resetImage = nil

	images, err := splitimage.FromDirectory(mw.settings.SplitImageDirectory)
	if err != nil {
		log.Printf("Failed to load split images: %v", err)
		return
	}

	for _, img := range images {
		name := strings.ToLower(filepath.Base(img.Path))
		if strings.Contains(name, "reset") {
			if mw.resetImage == nil {
				mw.resetImage = img
			}
		} else if mw.splitImage == nil {
			mw.splitImage = img
		}
	}
}

// setupUI sets up the menu and the main content
func (mw *MainWindow) setupUI() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Profile", mw.saveProfile),
		fyne.NewMenuItem("Open Screenshots Folder", mw.openScreenshotsFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", mw.openSettings),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Check for Updates...", func() { mw.checkForUpdates(false) }),
		fyne.NewMenuItem("Tutorial", func() {
			mw.openURL(fmt.Sprintf("https://github.com/%s#tutorial", update.GitHubRepository))
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("About", mw.openAbout),
	)
	mw.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))

	mw.splitDirLabel = widget.NewLabel(orUnset(mw.settings.SplitImageDirectory))
	browseButton := widget.NewButton("Browse", mw.selectSplitImageDirectory)
	splitDirRow := container.NewBorder(nil, nil, widget.NewLabel("Split Image Folder"), browseButton, mw.splitDirLabel)

	captureRegion := widget.NewCard("Capture Region", "",
		newRegionEditor(mw.settings.CaptureRegion, func(region models.Region) {
			mw.settings.CaptureRegion = region
		}).Object(),
	)

	mw.currentThresholdLabel = widget.NewLabel("-")
	mw.resetThresholdLabel = widget.NewLabel("-")
	thresholds := container.NewGridWithColumns(2,
		widget.NewLabel("Current split image threshold"), mw.currentThresholdLabel,
		widget.NewLabel("Reset image threshold"), mw.resetThresholdLabel,
	)

	mw.window.SetContent(container.NewVBox(
		splitDirRow,
		captureRegion,
		widget.NewSeparator(),
		thresholds,
	))

	mw.RefreshThresholdLabels()
}

// RefreshThresholdLabels recomputes the two derived threshold readouts
// from the current split and reset images. Absent images render "-".
func (mw *MainWindow) RefreshThresholdLabels() {
	mw.currentThresholdLabel.SetText(thresholdText(mw.splitImage, mw.settings))
	mw.resetThresholdLabel.SetText(thresholdText(mw.resetImage, mw.settings))
}

func thresholdText(img *splitimage.Image, settings *models.Settings) string {
	if img == nil {
		return "-"
	}
	return decimal(img.SimilarityThreshold(settings))
}

func orUnset(dir string) string {
	if dir == "" {
		return "(not set)"
	}
	return dir
}

// selectSplitImageDirectory lets the user pick the split image folder.
// Cancelling keeps the stored directory and the visible text.
func (mw *MainWindow) selectSplitImageDirectory() {
	dir, ok, err := chooseDirectory("Select Split Image Directory", mw.settings.SplitImageDirectory)
	if err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	if !ok {
		return
	}

	mw.settings.SplitImageDirectory = dir
	mw.splitDirLabel.SetText(dir)
	mw.reloadSplitImages()
	mw.RefreshThresholdLabels()
}

// openPath hands a file or folder to the platform opener; swapped in tests.
var openPath = shell.OpenFile

// openScreenshotsFolder opens the configured screenshot folder, falling
// back to the split image folder the way the screenshot chooser seeds.
func (mw *MainWindow) openScreenshotsFolder() {
	dir := mw.settings.ScreenshotDirectory
	if dir == "" {
		dir = mw.settings.SplitImageDirectory
	}
	if dir == "" {
		dialog.ShowInformation("Screenshots", "No screenshot folder has been set.", mw.window)
		return
	}

	if err := openPath(dir); err != nil {
		dialog.ShowError(err, mw.window)
	}
}

// saveProfile persists the settings record on the external save trigger.
func (mw *MainWindow) saveProfile() {
	if err := mw.storage.SaveSettings(mw.settings); err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	log.Println("Profile saved")
}

// openSettings shows the settings panel, reusing a still-open panel so a
// second open never spawns a second device enumeration.
func (mw *MainWindow) openSettings() {
	if mw.settingsWindow != nil {
		mw.settingsWindow.Show()
		return
	}

	mw.settingsWindow = NewSettingsWindow(mw)
	mw.settingsWindow.SetOnClosed(func() {
		mw.settingsWindow = nil
	})
	mw.settingsWindow.Show()
}

// openAbout shows the about window, reusing an open one.
func (mw *MainWindow) openAbout() {
	if mw.aboutWindow != nil {
		mw.aboutWindow.RequestFocus()
		return
	}

	mw.aboutWindow = newAboutWindow(mw.app)
	mw.aboutWindow.SetOnClosed(func() {
		mw.aboutWindow = nil
	})
	mw.aboutWindow.Show()
}

// checkForUpdates launches the background version check and drains its
// result channel. Startup checks stay silent on failure; user-initiated
// checks surface errors.
func (mw *MainWindow) checkForUpdates(checkOnOpen bool) {
	results, err := mw.checker.Check(checkOnOpen)
	if err != nil {
		if errors.Is(err, update.ErrCheckInFlight) && !checkOnOpen {
			dialog.ShowInformation("Check for Updates", "An update check is already running.", mw.window)
		}
		return
	}

	go func() {
		for result := range results {
			if result.Err != nil {
				dialog.ShowError(fmt.Errorf("failed to check for updates: %w", result.Err), mw.window)
				continue
			}
			mw.showUpdateChecker(result.LatestVersion, checkOnOpen)
		}
	}()
}

// showUpdateChecker opens the update dialog, reusing an open one.
func (mw *MainWindow) showUpdateChecker(latestVersion string, checkOnOpen bool) {
	if mw.updateWindow != nil {
		mw.updateWindow.RequestFocus()
		return
	}

	window := newUpdateWindow(mw, latestVersion, checkOnOpen)
	if window == nil {
		return
	}
	mw.updateWindow = window
	mw.updateWindow.SetOnClosed(func() {
		mw.updateWindow = nil
	})
	mw.updateWindow.Show()
}

func (mw *MainWindow) openURL(raw string) {
	if _, err := url.Parse(raw); err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	if err := shell.OpenURL(raw); err != nil {
		dialog.ShowError(err, mw.window)
	}
}
