package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2/widget"
)

// ErrMissingElement is returned when the host document lacks a control the
// board needs.
var ErrMissingElement = errors.New("missing host element")

// Document is the set of controls the board is wired to.
type Document struct {
	Canvas       *BoardWidget
	ColorInput   *ColorInput
	ClearTrigger *widget.Button
	Countdown    *widget.Label
}

// Validate fails if any required control is absent.
func (d *Document) Validate() error {
	var missing []string
	if d.Canvas == nil {
		missing = append(missing, "canvas")
	}
	if d.ColorInput == nil {
		missing = append(missing, "color input")
	}
	if d.ClearTrigger == nil {
		missing = append(missing, "clear trigger")
	}
	if d.Countdown == nil {
		missing = append(missing, "countdown")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingElement, strings.Join(missing, ", "))
	}
	return nil
}
