package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"autosplit/capture"
	"autosplit/hotkeys"
	"autosplit/models"
)

const devicePlaceholder = `Select "Video Capture Device" above`

var comparisonMethodNames = []string{"L2 Norm", "Histograms", "Perceptual Hash"}

// SettingsWindow is the settings panel controller. Opening it snapshots
// the settings record into the controls; every later control change writes
// exactly one key back (regions count as one composite key).
type SettingsWindow struct {
	main   *MainWindow
	window fyne.Window

	// devices holds the one enumeration of this panel-open session, so
	// selection indexes stay stable against replugging. The mutex orders
	// the enumeration goroutine's store against event-loop reads.
	devicesMu     sync.Mutex
	devices       []models.CameraInfo
	enumerateOnce sync.Once

	fpsEntry       *widget.Entry
	methodSelect   *widget.Select
	methodDetail   *widget.Label
	deviceSelect   *widget.Select
	thresholdEntry *widget.Entry
	regionEditors  []*regionEditor

	screenshotDirLabel *widget.Label
	speedDirLabel      *widget.Label
	directionDirLabel  *widget.Label
}

// NewSettingsWindow builds the settings panel over the shell's settings
// record. Control population is read-only; the store is first written when
// the user edits a control.
func NewSettingsWindow(main *MainWindow) *SettingsWindow {
	sw := &SettingsWindow{
		main:   main,
		window: main.app.NewWindow("Settings"),
	}
	sw.window.Resize(fyne.NewSize(520, 480))

	sw.window.SetContent(container.NewAppTabs(
		container.NewTabItem("Capture", sw.buildCaptureTab()),
		container.NewTabItem("Image", sw.buildImageTab()),
		container.NewTabItem("Wind Tracker", sw.buildWindTrackerTab()),
		container.NewTabItem("Hotkeys", sw.buildHotkeysTab()),
	))

	sw.startDeviceEnumeration()

	return sw
}

// Show shows the settings window
func (sw *SettingsWindow) Show() {
	sw.window.Show()
	sw.window.RequestFocus()
}

// SetOnClosed registers the close callback of the underlying window.
func (sw *SettingsWindow) SetOnClosed(onClosed func()) {
	sw.window.SetOnClosed(onClosed)
}

func (sw *SettingsWindow) buildCaptureTab() fyne.CanvasObject {
	settings := sw.main.settings
	methods := sw.main.captureManager.Methods()

	sw.fpsEntry = newIntEntry(settings.FPSLimit, func(value int) {
		settings.FPSLimit = value
	})

	liveCaptureCheck := widget.NewCheck("Live capture region", nil)
	liveCaptureCheck.SetChecked(settings.LiveCaptureRegion)
	liveCaptureCheck.OnChanged = func(checked bool) {
		settings.LiveCaptureRegion = checked
	}

	// Initial values go in before the handlers so population never writes
	// back into the record.
	methodLabels := make([]string, len(methods))
	for i, method := range methods {
		methodLabels[i] = fmt.Sprintf("- %s (%s)", method.Name, method.ShortDescription)
	}
	sw.methodSelect = widget.NewSelect(methodLabels, nil)
	sw.methodSelect.SetSelectedIndex(methods.Index(settings.CaptureMethod))

	sw.methodDetail = widget.NewLabel(sw.main.captureManager.Active().Description)
	sw.methodDetail.Wrapping = fyne.TextWrapWord

	sw.deviceSelect = widget.NewSelect(nil, nil)
	sw.deviceSelect.PlaceHolder = devicePlaceholder
	sw.deviceSelect.Disable()

	sw.methodSelect.OnChanged = func(string) {
		sw.captureMethodChanged()
	}
	sw.deviceSelect.OnChanged = func(string) {
		sw.captureDeviceChanged()
	}
	sw.applyDeviceState()

	sw.screenshotDirLabel = widget.NewLabel(orUnset(settings.ScreenshotDirectory))
	screenshotBrowse := widget.NewButton("Browse", sw.selectScreenshotDirectory)

	openScreenshotCheck := widget.NewCheck("Open screenshot on capture", nil)
	openScreenshotCheck.SetChecked(settings.OpenScreenshot)
	openScreenshotCheck.OnChanged = func(checked bool) {
		settings.OpenScreenshot = checked
	}

	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("FPS Limit"), nil, sw.fpsEntry),
		liveCaptureCheck,
		widget.NewLabel("Capture Method"),
		sw.methodSelect,
		sw.methodDetail,
		widget.NewLabel("Capture Device"),
		sw.deviceSelect,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel("Screenshots"), screenshotBrowse, sw.screenshotDirLabel),
		openScreenshotCheck,
	)
}

func (sw *SettingsWindow) buildImageTab() fyne.CanvasObject {
	settings := sw.main.settings

	comparisonSelect := widget.NewSelect(comparisonMethodNames, nil)
	comparisonSelect.SetSelectedIndex(settings.DefaultComparisonMethod)
	comparisonSelect.OnChanged = func(string) {
		if index := comparisonSelect.SelectedIndex(); index >= 0 {
			settings.DefaultComparisonMethod = index
		}
	}

	sw.thresholdEntry = newFloatEntry(settings.DefaultSimilarityThreshold, func(value float64) {
		settings.DefaultSimilarityThreshold = value
		sw.main.RefreshThresholdLabels()
	})
	delayEntry := newFloatEntry(settings.DefaultDelayTime, func(value float64) {
		settings.DefaultDelayTime = value
	})
	pauseEntry := newFloatEntry(settings.DefaultPauseTime, func(value float64) {
		settings.DefaultPauseTime = value
	})

	loopCheck := widget.NewCheck("Loop last split image to first split image", nil)
	loopCheck.SetChecked(settings.LoopSplits)
	loopCheck.OnChanged = func(checked bool) {
		settings.LoopSplits = checked
	}

	startResetsCheck := widget.NewCheck("Start also resets", nil)
	startResetsCheck.SetChecked(settings.StartAlsoResets)
	startResetsCheck.OnChanged = func(checked bool) {
		settings.StartAlsoResets = checked
	}

	autoResetCheck := widget.NewCheck("Enable auto Reset image", nil)
	autoResetCheck.SetChecked(settings.EnableAutoReset)
	autoResetCheck.OnChanged = func(checked bool) {
		settings.EnableAutoReset = checked
	}

	return container.NewVBox(
		widget.NewLabel("Default Comparison Method"),
		comparisonSelect,
		container.NewBorder(nil, nil, widget.NewLabel("Default Similarity Threshold"), nil, sw.thresholdEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Default Delay Time (sec)"), nil, delayEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Default Pause Time (sec)"), nil, pauseEntry),
		loopCheck,
		startResetsCheck,
		autoResetCheck,
	)
}

func (sw *SettingsWindow) buildWindTrackerTab() fyne.CanvasObject {
	settings := sw.main.settings

	modeCheck := widget.NewCheck("Wind tracker mode", nil)
	modeCheck.SetChecked(settings.WindTrackerMode)
	modeCheck.OnChanged = func(checked bool) {
		settings.WindTrackerMode = checked
	}

	mphCheck := widget.NewCheck("Show speed in mph", nil)
	mphCheck.SetChecked(settings.WindTrackerMPH)
	mphCheck.OnChanged = func(checked bool) {
		settings.WindTrackerMPH = checked
	}

	sw.speedDirLabel = widget.NewLabel(orUnset(settings.WindTrackerSpeedImageDirectory))
	speedBrowse := widget.NewButton("Browse", func() {
		sw.selectWindTrackerDirectory("Speed", sw.speedDirLabel)
	})

	sw.directionDirLabel = widget.NewLabel(orUnset(settings.WindTrackerDirectionImageDirectory))
	directionBrowse := widget.NewButton("Browse", func() {
		sw.selectWindTrackerDirectory("Direction", sw.directionDirLabel)
	})

	items := []fyne.CanvasObject{
		modeCheck,
		mphCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Speed Images"), speedBrowse, sw.speedDirLabel),
		container.NewBorder(nil, nil, widget.NewLabel("Direction Images"), directionBrowse, sw.directionDirLabel),
	}

	for index := 0; index < models.WindTrackerRegionCount; index++ {
		index := index
		editor := newRegionEditor(settings.WindTrackerRegion(index), func(region models.Region) {
			settings.SetWindTrackerRegion(index, region)
		})
		sw.regionEditors = append(sw.regionEditors, editor)
		items = append(items, widget.NewCard(fmt.Sprintf("Region %d", index+1), "", editor.Object()))
	}

	return container.NewVBox(items...)
}

func (sw *SettingsWindow) buildHotkeysTab() fyne.CanvasObject {
	settings := sw.main.settings

	items := make([]fyne.CanvasObject, 0, len(hotkeys.Names))
	for _, name := range hotkeys.Names {
		name := name

		gestureEntry := widget.NewEntry()
		gestureEntry.SetText(settings.Hotkey(name))
		gestureEntry.Disable()

		setButton := widget.NewButton("Set", func() {
			// Capture blocks until the next gesture, keep it off the UI loop
			go func() {
				gesture, err := hotkeys.Set(settings, sw.main.binder, name)
				if err != nil {
					if !errors.Is(err, hotkeys.ErrCaptureUnsupported) {
						dialog.ShowError(err, sw.window)
					}
					return
				}
				gestureEntry.SetText(gesture)
			}()
		})

		items = append(items, container.NewBorder(nil, nil,
			widget.NewLabel(hotkeys.Label(name)), setButton, gestureEntry))
	}

	return container.NewVBox(items...)
}

// setDevices publishes the enumeration result; deviceList snapshots it.
// Both sides of the panel (the enumeration goroutine and the event-loop
// handlers) only touch the device slice through these two.
func (sw *SettingsWindow) setDevices(devices []models.CameraInfo) {
	sw.devicesMu.Lock()
	sw.devices = devices
	sw.devicesMu.Unlock()
}

func (sw *SettingsWindow) deviceList() []models.CameraInfo {
	sw.devicesMu.Lock()
	defer sw.devicesMu.Unlock()
	return sw.devices
}

// captureMethodChanged resolves the selected index through the registry,
// writes the method key and updates the device control.
func (sw *SettingsWindow) captureMethodChanged() {
	method, ok := sw.main.captureManager.Methods().ByIndex(sw.methodSelect.SelectedIndex())
	if !ok {
		return
	}

	sw.main.settings.CaptureMethod = method.ID
	sw.methodDetail.SetText(method.Description)
	sw.main.captureManager.ChangeMethod(method.ID)
	sw.applyDeviceState()
}

// captureDeviceChanged writes device id and name from the reconciled
// enumeration. The sentinel "no selection" index is a no-op.
func (sw *SettingsWindow) captureDeviceChanged() {
	devices := sw.deviceList()
	index := sw.deviceSelect.SelectedIndex()
	if index < 0 || index >= len(devices) {
		return
	}

	device := devices[index]
	sw.main.settings.CaptureDeviceName = device.Name
	sw.main.settings.CaptureDeviceID = device.DeviceID

	if active := sw.main.captureManager.Active(); active.RequiresDevice {
		// Re-initializes the device backend against the new device
		sw.main.captureManager.ChangeMethod(active.ID)
	}
}

// applyDeviceState enables the device control only while the device-based
// method is selected, and points the selection at the stored device. It
// runs after both method changes and enumeration completion, so the
// control reflects whichever event arrived last.
func (sw *SettingsWindow) applyDeviceState() {
	if !sw.main.captureManager.Active().RequiresDevice {
		sw.deviceSelect.PlaceHolder = devicePlaceholder
		sw.deviceSelect.ClearSelected()
		sw.deviceSelect.Disable()
		return
	}

	sw.deviceSelect.Enable()
	if devices := sw.deviceList(); len(devices) > 0 {
		sw.deviceSelect.SetSelectedIndex(capture.DeviceIndex(devices, sw.main.settings.CaptureDeviceID))
	}
}

// startDeviceEnumeration fires the one background enumeration of this
// panel-open session and reconciles the device control when it lands.
func (sw *SettingsWindow) startDeviceEnumeration() {
	sw.enumerateOnce.Do(func() {
		go func() {
			devices, err := sw.main.enumerator.ListVideoCaptureDevices(context.Background())
			if err != nil {
				log.Printf("Device enumeration failed: %v", err)
				devices = nil
			}

			sw.setDevices(devices)
			if len(devices) == 0 {
				sw.deviceSelect.PlaceHolder = "No device found."
				sw.deviceSelect.Refresh()
				return
			}

			sw.deviceSelect.Options = capture.DeviceLabels(devices)
			sw.deviceSelect.Refresh()
			sw.applyDeviceState()
		}()
	})
}

// selectScreenshotDirectory picks the screenshot folder. The split image
// folder seeds the dialog when no screenshot folder was chosen yet.
func (sw *SettingsWindow) selectScreenshotDirectory() {
	settings := sw.main.settings

	start := settings.ScreenshotDirectory
	if start == "" {
		start = settings.SplitImageDirectory
	}

	dir, ok, err := chooseDirectory("Select Screenshots Directory", start)
	if err != nil {
		dialog.ShowError(err, sw.window)
		return
	}
	if !ok {
		return
	}

	settings.ScreenshotDirectory = dir
	sw.screenshotDirLabel.SetText(dir)
}

// selectWindTrackerDirectory picks one of the wind tracker image folders.
func (sw *SettingsWindow) selectWindTrackerDirectory(kind string, label *widget.Label) {
	settings := sw.main.settings

	current := settings.WindTrackerSpeedImageDirectory
	if kind == "Direction" {
		current = settings.WindTrackerDirectionImageDirectory
	}

	dir, ok, err := chooseDirectory(fmt.Sprintf("Select Wind Tracker %s Image Directory", kind), current)
	if err != nil {
		dialog.ShowError(err, sw.window)
		return
	}
	if !ok {
		return
	}

	if kind == "Direction" {
		settings.WindTrackerDirectionImageDirectory = dir
	} else {
		settings.WindTrackerSpeedImageDirectory = dir
	}
	label.SetText(dir)
}
