package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"

	"autosplit/models"
)

// newIntEntry builds an entry that reports parsed integer edits. Partial
// input (empty, minus sign, stray letters) reports nothing.
func newIntEntry(initial int, onChanged func(int)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(initial))
	entry.OnChanged = func(text string) {
		value, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return
		}
		onChanged(value)
	}
	return entry
}

// newFloatEntry builds an entry that reports parsed float edits.
func newFloatEntry(initial float64, onChanged func(float64)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(decimal(initial))
	entry.OnChanged = func(text string) {
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return
		}
		onChanged(value)
	}
	return entry
}

// decimal renders a settings value the way the threshold labels show it.
func decimal(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// regionEditor is the four-field editor for one capture region. Every
// sub-field edit re-reads all four entries and hands the caller one whole
// record, so the stored region always matches the visible fields.
type regionEditor struct {
	xEntry      *widget.Entry
	yEntry      *widget.Entry
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	object      fyne.CanvasObject
}

func newRegionEditor(initial models.Region, write func(models.Region)) *regionEditor {
	editor := &regionEditor{
		xEntry:      widget.NewEntry(),
		yEntry:      widget.NewEntry(),
		widthEntry:  widget.NewEntry(),
		heightEntry: widget.NewEntry(),
	}

	editor.xEntry.SetText(strconv.Itoa(initial.X))
	editor.yEntry.SetText(strconv.Itoa(initial.Y))
	editor.widthEntry.SetText(strconv.Itoa(initial.Width))
	editor.heightEntry.SetText(strconv.Itoa(initial.Height))

	writeWhole := func(string) {
		write(editor.Region())
	}
	editor.xEntry.OnChanged = writeWhole
	editor.yEntry.OnChanged = writeWhole
	editor.widthEntry.OnChanged = writeWhole
	editor.heightEntry.OnChanged = writeWhole

	editor.object = container.NewGridWithColumns(4,
		labeled("X", editor.xEntry),
		labeled("Y", editor.yEntry),
		labeled("Width", editor.widthEntry),
		labeled("Height", editor.heightEntry),
	)
	return editor
}

// Region assembles the record currently shown in the four entries.
func (e *regionEditor) Region() models.Region {
	return models.Region{
		X:      parseField(e.xEntry.Text),
		Y:      parseField(e.yEntry.Text),
		Width:  parseField(e.widthEntry.Text),
		Height: parseField(e.heightEntry.Text),
	}
}

func (e *regionEditor) Object() fyne.CanvasObject {
	return e.object
}

// parseField reads one region sub-field; unreadable input counts as 0 so a
// half-typed field never blocks the composite write.
func parseField(text string) int {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return value
}

func labeled(label string, entry *widget.Entry) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, entry)
}

// selectDirectory runs the native folder dialog. Tests swap it out so the
// chooser paths can run without a desktop session.
var selectDirectory = func(title, start string) (string, error) {
	options := []zenity.Option{zenity.Directory(), zenity.Title(title)}
	if start != "" {
		options = append(options, zenity.Filename(start))
	}
	return zenity.SelectFile(options...)
}

// chooseDirectory opens the native folder chooser. Cancellation returns
// ok=false with no error so callers can leave the store untouched.
func chooseDirectory(title, start string) (string, bool, error) {
	dir, err := selectDirectory(title, start)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}
