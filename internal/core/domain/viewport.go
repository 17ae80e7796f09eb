package domain

// ViewMode is the viewport mode of the last render pass: wide over every
// vessel, or close on the filtered country. It does not name the filter;
// after a zoom-to-all the mode is ModeAll while Country keeps the selection.
type ViewMode string

const (
	ModeAll      ViewMode = "all"
	ModeFiltered ViewMode = "filtered"
)

// ViewportState is the session-scoped map state: the active country filter and
// the viewport computed for it on the last render pass. Country is the filter
// and is the ShowAll sentinel when nothing is selected.
type ViewportState struct {
	Country   string   `json:"country"`
	Mode      ViewMode `json:"mode"`
	Center    GeoPoint `json:"center"`
	Zoom      float64  `json:"zoom"`
	ZoomReset bool     `json:"zoom_reset"` // transient, consumed by the next viewport computation
}

// InitialViewportState is the state of a session that has not rendered yet.
func InitialViewportState() ViewportState {
	return ViewportState{Country: ShowAll, Mode: ModeAll}
}

// ViewEventKind enumerates the interactive controls.
type ViewEventKind string

const (
	EventRender        ViewEventKind = "render"
	EventSelectCountry ViewEventKind = "select_country"
	EventZoomToAll     ViewEventKind = "zoom_to_all"
	EventClearFilter   ViewEventKind = "clear_filter"
)

// ViewEvent is one user interaction driving a render pass.
type ViewEvent struct {
	Kind    ViewEventKind `json:"kind"`
	Country string        `json:"country,omitempty"`
}

// View is everything the presentation layer needs for one render pass.
type View struct {
	State     ViewportState  `json:"state"`
	Vessels   []PlacedVessel `json:"vessels"`
	Countries []string       `json:"countries"`
	Dataset   DatasetSummary `json:"dataset"`
}
