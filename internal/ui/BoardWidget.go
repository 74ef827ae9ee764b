package ui

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"Kalambury/internal/state"
	"Kalambury/internal/surface"
)

// BoardWidget is the drawable canvas element. Its buffer follows the widget
// size and pointer input drives a stroke recorder.
type BoardWidget struct {
	widget.BaseWidget
	surface  *surface.Manager
	recorder *state.Recorder
	raster   *canvas.Raster
	laidOut  fyne.Size

	// OnSegment is called after each segment lands on the buffer.
	OnSegment func(state.Segment)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)
var _ surface.Host = (*BoardWidget)(nil)

func NewBoardWidget(initialColor string) (*BoardWidget, error) {
	b := &BoardWidget{}
	b.ExtendBaseWidget(b)

	m, err := surface.NewManager(b)
	if err != nil {
		return nil, err
	}
	r, err := state.NewRecorder(m, initialColor)
	if err != nil {
		return nil, err
	}
	r.OnSegment = b.segmentDrawn

	b.surface, b.recorder = m, r
	b.raster = canvas.NewRaster(func(w, h int) image.Image {
		return m.Snapshot()
	})
	b.raster.ScaleMode = canvas.ImageScalePixels
	return b, nil
}

// ContentSize is the widget's layout size rounded down to whole pixels.
func (b *BoardWidget) ContentSize() (int, int) {
	s := b.Size()
	return int(s.Width), int(s.Height)
}

// Surface exposes the drawing buffer.
func (b *BoardWidget) Surface() *surface.Manager { return b.surface }

// Recorder exposes the stroke state machine.
func (b *BoardWidget) Recorder() *state.Recorder { return b.recorder }

func (b *BoardWidget) SetColor(c string) error {
	if err := b.recorder.SetColor(c); err != nil {
		return err
	}
	log.Printf("[UI] Stroke color set to %s", c)
	return nil
}

// Clear erases the buffer.
func (b *BoardWidget) Clear() {
	b.recorder.Clear()
	b.Refresh()
}

// Resize resets the buffer whenever the layout size changes.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if size == b.laidOut {
		return
	}
	b.laidOut = size
	b.surface.Resize()
	b.Refresh()
}

func (b *BoardWidget) segmentDrawn(s state.Segment) {
	b.Refresh()
	if b.OnSegment != nil {
		b.OnSegment(s)
	}
}

func toPoint(p fyne.Position) surface.Point {
	return surface.Point{X: int(p.X), Y: int(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.recorder.PointerDown(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.recorder.PointerUp()
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.recorder.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) MouseOut() {
	b.recorder.PointerLeave()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

// Dragged carries pointer motion while a button or finger is down.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.recorder.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.recorder.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.recorder.PointerUp()
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.recorder.PointerLeave()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
