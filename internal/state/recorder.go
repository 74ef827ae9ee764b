package state

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/google/uuid"

	"Kalambury/internal/surface"
)

// Canvas is where the recorder rasterizes segments.
type Canvas interface {
	StrokeLine(from, to surface.Point, c color.Color, width float64)
	Clear()
}

// bounded is implemented by canvases that can tell whether a point is on
// them. A move that leaves such a canvas ends the stroke.
type bounded interface {
	Contains(p surface.Point) bool
}

// Recorder turns pointer events into segments drawn on a Canvas.
type Recorder struct {
	canvas       Canvas
	ctx          Context
	color        string
	rgba         color.NRGBA
	resetOnClear bool
	segments     uint64
	mu           sync.Mutex

	// OnSegment is called after each segment has been drawn.
	OnSegment func(Segment)
}

// NewRecorder returns an idle recorder drawing on canvas in initialColor.
func NewRecorder(canvas Canvas, initialColor string) (*Recorder, error) {
	rgba, err := surface.ParseColor(initialColor)
	if err != nil {
		return nil, fmt.Errorf("initial color: %w", err)
	}
	return &Recorder{canvas: canvas, color: initialColor, rgba: rgba}, nil
}

// SetColor changes the color of all segments drawn from now on, including
// the rest of a stroke in progress. On error the active color is unchanged.
func (r *Recorder) SetColor(c string) error {
	rgba, err := surface.ParseColor(c)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.color, r.rgba = c, rgba
	r.mu.Unlock()
	return nil
}

// Color returns the active color string.
func (r *Recorder) Color() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.color
}

// SetResetOnClear makes Clear also end a stroke in progress.
func (r *Recorder) SetResetOnClear(v bool) {
	r.mu.Lock()
	r.resetOnClear = v
	r.mu.Unlock()
}

// State returns a copy of the stroke context.
func (r *Recorder) State() Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctx
}

// Drawing reports whether a stroke is in progress.
func (r *Recorder) Drawing() bool {
	return r.State().Active
}

// Segments returns how many segments have been drawn so far.
func (r *Recorder) Segments() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.segments
}

func (r *Recorder) PointerDown(p surface.Point) {
	r.Handle(Event{Kind: PointerDown, At: p, StrokeID: uuid.NewString()})
}

func (r *Recorder) PointerMove(p surface.Point) {
	r.Handle(Event{Kind: PointerMove, At: p})
}

func (r *Recorder) PointerUp() {
	r.Handle(Event{Kind: PointerUp})
}

func (r *Recorder) PointerLeave() {
	r.Handle(Event{Kind: PointerLeave})
}

// Handle feeds one event through the state machine and draws the resulting
// segments. It returns the segments drawn.
func (r *Recorder) Handle(ev Event) []Segment {
	if ev.Kind == PointerMove {
		if b, ok := r.canvas.(bounded); ok && !b.Contains(ev.At) {
			ev = Event{Kind: PointerLeave}
		}
	}

	r.mu.Lock()
	wasActive := r.ctx.Active
	var segs []Segment
	r.ctx, segs = Step(r.ctx, ev, r.color)
	for _, s := range segs {
		r.canvas.StrokeLine(s.From, s.To, r.rgba, s.Width)
	}
	r.segments += uint64(len(segs))
	ctx := r.ctx
	onSegment := r.OnSegment
	r.mu.Unlock()

	switch {
	case ev.Kind == PointerDown:
		log.Printf("[STROKE] Begin %s at (%d,%d)", ctx.StrokeID, ctx.Last.X, ctx.Last.Y)
	case wasActive && !ctx.Active:
		log.Printf("[STROKE] End %s on %s", ctx.StrokeID, ev.Kind)
	}

	if onSegment != nil {
		for _, s := range segs {
			onSegment(s)
		}
	}
	return segs
}

// Clear erases the canvas. Unless reset-on-clear is enabled, a stroke in
// progress keeps going from its last point.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.canvas.Clear()
	if r.resetOnClear && r.ctx.Active {
		r.ctx.Active = false
		r.ctx.HasLast = false
		log.Printf("[STROKE] Cleared mid-stroke, ending %s", r.ctx.StrokeID)
	}
	r.mu.Unlock()
}
