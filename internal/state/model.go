package state

import (
	"Kalambury/internal/surface"
)

// StrokeWidth is the fixed line width of every segment.
const StrokeWidth = 2.0

// EventKind identifies a pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return "unknown"
}

// Event is one pointer input in canvas coordinates. StrokeID is only read on
// PointerDown and names the stroke that begins there.
type Event struct {
	Kind     EventKind
	At       surface.Point
	StrokeID string
}

// Context is the single in-progress stroke. Last is meaningful whenever
// Active is set.
type Context struct {
	Active   bool
	Last     surface.Point
	HasLast  bool
	StrokeID string
}

// Segment is one straight line to rasterize. The JSON shape matches the
// draw_line payload (x1, y1, x2, y2, color, width).
type Segment struct {
	StrokeID string        `json:"stroke_id"`
	From     surface.Point `json:"from"`
	To       surface.Point `json:"to"`
	Color    string        `json:"color"`
	Width    float64       `json:"width"`
}
