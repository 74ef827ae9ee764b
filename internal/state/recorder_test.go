package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kalambury/internal/surface"
)

type line struct {
	from, to surface.Point
	c        color.Color
	width    float64
}

type fakeCanvas struct {
	lines  []line
	clears int
}

func (f *fakeCanvas) StrokeLine(from, to surface.Point, c color.Color, width float64) {
	f.lines = append(f.lines, line{from, to, c, width})
}

func (f *fakeCanvas) Clear() { f.clears++ }

type fakeHost struct{ w, h int }

func (h fakeHost) ContentSize() (int, int) { return h.w, h.h }

var (
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

func newRecorder(t *testing.T, c Canvas) *Recorder {
	t.Helper()
	r, err := NewRecorder(c, "#000000")
	require.NoError(t, err)
	return r
}

func TestNewRecorderRejectsBadColor(t *testing.T) {
	_, err := NewRecorder(&fakeCanvas{}, "bogus")
	assert.ErrorIs(t, err, surface.ErrBadColor)
}

func TestRecorderDrawsOneLinePerMove(t *testing.T) {
	canvas := &fakeCanvas{}
	r := newRecorder(t, canvas)

	var seen []Segment
	r.OnSegment = func(s Segment) { seen = append(seen, s) }

	r.PointerDown(pt(10, 10))
	assert.True(t, r.Drawing())
	assert.Empty(t, canvas.lines)

	r.PointerMove(pt(20, 10))
	r.PointerMove(pt(20, 20))
	r.PointerUp()

	assert.False(t, r.Drawing())
	assert.Equal(t, []line{
		{pt(10, 10), pt(20, 10), black, 2},
		{pt(20, 10), pt(20, 20), black, 2},
	}, canvas.lines)
	require.Len(t, seen, 2)
	assert.Equal(t, seen[0].StrokeID, seen[1].StrokeID)
	assert.NotEmpty(t, seen[0].StrokeID)
	assert.Equal(t, uint64(2), r.Segments())
}

func TestRecorderIgnoresMovesWhileIdle(t *testing.T) {
	canvas := &fakeCanvas{}
	r := newRecorder(t, canvas)
	r.PointerMove(pt(1, 1))
	r.PointerMove(pt(2, 2))
	assert.Empty(t, canvas.lines)
}

func TestRecorderStrokesGetDistinctIDs(t *testing.T) {
	r := newRecorder(t, &fakeCanvas{})
	r.PointerDown(pt(0, 0))
	first := r.State().StrokeID
	r.PointerUp()
	r.PointerDown(pt(0, 0))
	assert.NotEqual(t, first, r.State().StrokeID)
}

func TestColorChangeMidStrokeAppliesToNextSegment(t *testing.T) {
	canvas := &fakeCanvas{}
	r := newRecorder(t, canvas)

	r.PointerDown(pt(0, 0))
	r.PointerMove(pt(5, 0))
	require.NoError(t, r.SetColor("#ff0000"))
	r.PointerMove(pt(10, 0))

	require.Len(t, canvas.lines, 2)
	assert.Equal(t, black, canvas.lines[0].c)
	assert.Equal(t, red, canvas.lines[1].c)
}

func TestSetColorRejectsBadValue(t *testing.T) {
	r := newRecorder(t, &fakeCanvas{})
	assert.ErrorIs(t, r.SetColor("#xyz"), surface.ErrBadColor)
	assert.Equal(t, "#000000", r.Color())
}

func TestColorChangeWhileIdleKeepsEarlierPixels(t *testing.T) {
	m, err := surface.NewManager(fakeHost{40, 40})
	require.NoError(t, err)
	r := newRecorder(t, m)

	r.PointerDown(pt(0, 10))
	r.PointerMove(pt(39, 10))
	r.PointerUp()

	require.NoError(t, r.SetColor("red"))
	r.PointerDown(pt(0, 30))
	r.PointerMove(pt(39, 30))
	r.PointerUp()

	assert.Equal(t, color.RGBA{A: 0xff}, m.At(pt(20, 10)))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, m.At(pt(20, 30)))
}

func TestClearMidStrokeKeepsDrawing(t *testing.T) {
	m, err := surface.NewManager(fakeHost{40, 40})
	require.NoError(t, err)
	r := newRecorder(t, m)

	r.PointerDown(pt(0, 10))
	r.PointerMove(pt(20, 10))
	r.Clear()
	assert.True(t, m.Blank())
	assert.True(t, r.Drawing())

	segs := r.Handle(Event{Kind: PointerMove, At: pt(20, 30)})
	require.Len(t, segs, 1)
	assert.Equal(t, pt(20, 10), segs[0].From)
	assert.False(t, m.Blank())
}

func TestClearMidStrokeWithReset(t *testing.T) {
	canvas := &fakeCanvas{}
	r := newRecorder(t, canvas)
	r.SetResetOnClear(true)

	r.PointerDown(pt(0, 0))
	r.PointerMove(pt(5, 5))
	r.Clear()
	r.PointerMove(pt(9, 9))

	assert.Equal(t, 1, canvas.clears)
	assert.Len(t, canvas.lines, 1)
	assert.False(t, r.Drawing())
}

func TestMoveOffCanvasEndsStroke(t *testing.T) {
	m, err := surface.NewManager(fakeHost{20, 20})
	require.NoError(t, err)
	r := newRecorder(t, m)

	r.PointerDown(pt(5, 5))
	r.PointerMove(pt(10, 5))
	r.PointerMove(pt(25, 5))
	assert.False(t, r.Drawing())
	r.PointerMove(pt(15, 5))
	assert.Equal(t, uint64(1), r.Segments())
}

func TestResizeDuringStrokeLosesArtwork(t *testing.T) {
	m, err := surface.NewManager(fakeHost{40, 40})
	require.NoError(t, err)
	r := newRecorder(t, m)

	r.PointerDown(pt(0, 10))
	r.PointerMove(pt(30, 10))
	m.Resize()
	assert.True(t, m.Blank())
	assert.True(t, r.Drawing())
}
