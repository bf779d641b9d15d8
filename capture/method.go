package capture

// Method describes one pluggable capture backend strategy.
type Method struct {
	ID               string
	Name             string
	ShortDescription string
	Description      string

	// RequiresDevice marks the backend that reads from a physical video
	// capture device instead of the screen.
	RequiresDevice bool
}

// MethodList is an ordered registry of capture methods. Combobox indexes
// map directly onto list positions.
type MethodList []Method

// Methods is the built-in registry, in display order.
var Methods = MethodList{
	{
		ID:               "bitblt",
		Name:             "BitBlt",
		ShortDescription: "fastest, least compatible",
		Description: "The best option when compatible. But it cannot grab " +
			"frames from hardware accelerated windows.",
	},
	{
		ID:               "windows_graphics_capture",
		Name:             "Windows Graphics Capture",
		ShortDescription: "fast, most compatible",
		Description: "Fast and works with hardware accelerated windows. " +
			"Requires a recent OS release.",
	},
	{
		ID:               "printwindow_renderfullcontent",
		Name:             "Force Full Content Rendering",
		ShortDescription: "very slow, but can be useful",
		Description: "Asks the window to render its full content off-screen " +
			"before grabbing it. Slow, but captures windows hidden behind others.",
	},
	{
		ID:               "desktop_duplication",
		Name:             "Direct Display Capture",
		ShortDescription: "slow, bound to a display",
		Description: "Duplicates the display output. Captures exclusive " +
			"fullscreen content, but follows the monitor rather than the window.",
	},
	{
		ID:               "video_capture_device",
		Name:             "Video Capture Device",
		ShortDescription: "see below",
		Description: "Reads frames from an attached video capture device, " +
			"selected in the dropdown below.",
		RequiresDevice: true,
	},
}

// ByIndex resolves a combobox index to a method. The second return is
// false for out-of-range indexes.
func (l MethodList) ByIndex(index int) (Method, bool) {
	if index < 0 || index >= len(l) {
		return Method{}, false
	}
	return l[index], true
}

// Index returns the list position of a method identifier, or 0 when the
// identifier is unknown so a stale profile still selects a valid entry.
func (l MethodList) Index(id string) int {
	for i, method := range l {
		if method.ID == id {
			return i
		}
	}
	return 0
}

// ByID resolves a method identifier.
func (l MethodList) ByID(id string) (Method, bool) {
	for _, method := range l {
		if method.ID == id {
			return method, true
		}
	}
	return Method{}, false
}
