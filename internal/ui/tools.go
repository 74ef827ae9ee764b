package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Kalambury/internal/surface"
)

// Palette is the row of quick colors shown next to the picker.
var Palette = []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// ColorInput is the color control. It holds a CSS color string and reports
// every change through OnChanged.
type ColorInput struct {
	value     string
	current   *canvas.Rectangle
	swatches  []*colorSwatch
	pickerBtn *widget.Button
	content   fyne.CanvasObject
	parent    fyne.Window

	OnChanged func(string)
}

// NewColorInput builds the control with value selected. Advanced picking
// opens a dialog on parent.
func NewColorInput(value string, parent fyne.Window) (*ColorInput, error) {
	c, err := surface.ParseColor(value)
	if err != nil {
		return nil, err
	}
	in := &ColorInput{value: value, parent: parent}
	in.current = canvas.NewRectangle(c)
	in.current.SetMinSize(fyne.NewSize(32, 32))
	in.current.StrokeColor = color.Black
	in.current.StrokeWidth = 2

	box := container.NewHBox(widget.NewLabel("Color:"), in.current)
	for _, hex := range Palette {
		pc, _ := surface.ParseColor(hex)
		sw := newColorSwatch(pc, in.pick)
		in.swatches = append(in.swatches, sw)
		box.Add(sw)
	}
	in.pickerBtn = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), in.showPicker)
	box.Add(in.pickerBtn)
	in.content = box
	return in, nil
}

// Value returns the selected color string.
func (in *ColorInput) Value() string { return in.value }

// Object is the control's canvas object.
func (in *ColorInput) Object() fyne.CanvasObject { return in.content }

// Set selects a color as if the user had picked it.
func (in *ColorInput) Set(value string) error {
	c, err := surface.ParseColor(value)
	if err != nil {
		return err
	}
	in.value = value
	in.current.FillColor = c
	in.current.Refresh()
	if in.OnChanged != nil {
		in.OnChanged(value)
	}
	return nil
}

func (in *ColorInput) pick(c color.Color) {
	// a formatted color always parses
	_ = in.Set(surface.FormatColor(c))
}

func (in *ColorInput) showPicker() {
	picker := dialog.NewColorPicker("Stroke color", "Pick a color for new lines", in.pick, in.parent)
	picker.Advanced = true
	picker.SetColor(in.current.FillColor)
	picker.Show()
}

// --- The Main Toolbar ---
func NewToolbar(colors *ColorInput, clear *widget.Button, countdown *widget.Label) fyne.CanvasObject {
	return container.NewHBox(
		colors.Object(),
		widget.NewSeparator(),
		clear,
		layout.NewSpacer(),
		widget.NewIcon(theme.HistoryIcon()),
		countdown,
	)
}
