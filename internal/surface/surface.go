package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// ErrNoHost is returned by NewManager when there is no element to size the
// buffer against.
var ErrNoHost = errors.New("surface: no host element")

// Point is a canvas-relative pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Host is the element the drawing buffer is displayed in.
type Host interface {
	// ContentSize reports the current layout box in pixels.
	ContentSize() (width, height int)
}

// Manager owns the canvas buffer and keeps its pixel size equal to the
// host's layout size. Any resize discards the drawn content.
type Manager struct {
	host Host
	buf  *image.RGBA
	ras  *vector.Rasterizer // reuse
	mu   sync.RWMutex
}

// NewManager creates a manager for host and performs the initial resize.
func NewManager(host Host) (*Manager, error) {
	if host == nil {
		return nil, ErrNoHost
	}
	m := &Manager{host: host, ras: &vector.Rasterizer{}}
	m.Resize()
	return m, nil
}

// Resize reallocates the buffer at the host's current size. The old pixels
// are dropped even when the size did not change.
func (m *Manager) Resize() {
	w, h := m.host.ContentSize()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	m.mu.Lock()
	m.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	m.mu.Unlock()

	log.Printf("[SURFACE] Buffer reset to %dx%d", w, h)
}

// Size returns the buffer dimensions.
func (m *Manager) Size() (width, height int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b := m.buf.Bounds()
	return b.Dx(), b.Dy()
}

// Contains reports whether p lies inside the buffer.
func (m *Manager) Contains(p Point) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return image.Pt(p.X, p.Y).In(m.buf.Bounds())
}

// Clear erases every pixel to transparent.
func (m *Manager) Clear() {
	m.mu.Lock()
	clear(m.buf.Pix)
	m.mu.Unlock()
}

// StrokeLine rasterizes a straight butt-capped line of the given width.
// A zero-length line draws nothing.
func (m *Manager) StrokeLine(from, to Point, c color.Color, width float64) {
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// half-width normal
	nx, ny := -dy/length*width/2, dx/length*width/2

	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.buf.Bounds()
	if b.Empty() {
		return
	}
	m.ras.Reset(b.Dx(), b.Dy())
	m.ras.DrawOp = draw.Over
	m.ras.MoveTo(float32(float64(from.X)+nx), float32(float64(from.Y)+ny))
	m.ras.LineTo(float32(float64(to.X)+nx), float32(float64(to.Y)+ny))
	m.ras.LineTo(float32(float64(to.X)-nx), float32(float64(to.Y)-ny))
	m.ras.LineTo(float32(float64(from.X)-nx), float32(float64(from.Y)-ny))
	m.ras.ClosePath()
	m.ras.Draw(m.buf, b, image.NewUniform(c), image.Point{})
}

// At returns the color of the pixel at p.
func (m *Manager) At(p Point) color.RGBA {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buf.RGBAAt(p.X, p.Y)
}

// Blank reports whether no pixel has been drawn since the last clear or
// resize.
func (m *Manager) Blank() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.buf.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the buffer for display.
func (m *Manager) Snapshot() *image.RGBA {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img := image.NewRGBA(m.buf.Bounds())
	copy(img.Pix, m.buf.Pix)
	return img
}
