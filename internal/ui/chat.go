package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Kalambury/internal/chat"
)

// ChatPanel shows a chat log with an input line under it.
type ChatPanel struct {
	log     *chat.Log
	Input   *widget.Entry
	lines   *fyne.Container
	scroll  *container.Scroll
	content fyne.CanvasObject
}

func NewChatPanel(l *chat.Log) *ChatPanel {
	p := &ChatPanel{log: l}
	p.lines = container.NewVBox()
	p.scroll = container.NewVScroll(p.lines)

	p.Input = widget.NewEntry()
	p.Input.SetPlaceHolder("Type a guess...")
	p.Input.OnSubmitted = func(string) { p.Submit() }
	send := widget.NewButtonWithIcon("", theme.MailSendIcon(), p.Submit)

	for _, e := range l.Entries() {
		p.appendLine(e)
	}
	l.OnAppend = p.appendLine

	p.content = container.NewBorder(nil, container.NewBorder(nil, nil, nil, send, p.Input), nil, nil, p.scroll)
	return p
}

// Object is the panel's canvas object.
func (p *ChatPanel) Object() fyne.CanvasObject { return p.content }

// Submit posts the input text. The input is emptied only when a line was
// accepted.
func (p *ChatPanel) Submit() {
	if _, ok := p.log.Submit(p.Input.Text); ok {
		p.Input.SetText("")
	}
}

// Lines returns the text shown for each log entry.
func (p *ChatPanel) Lines() []string {
	out := make([]string, 0, len(p.lines.Objects))
	for _, o := range p.lines.Objects {
		if l, ok := o.(*widget.Label); ok {
			out = append(out, l.Text)
		}
	}
	return out
}

func formatEntry(e chat.Entry) string {
	if e.System {
		return fmt.Sprintf("[%s] * %s", e.Stamp(), e.Text)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Stamp(), e.Author, e.Text)
}

func (p *ChatPanel) appendLine(e chat.Entry) {
	line := widget.NewLabel(formatEntry(e))
	line.Wrapping = fyne.TextWrapWord
	if e.System {
		line.TextStyle = fyne.TextStyle{Italic: true}
	}
	p.lines.Add(line)
	// drop labels the log no longer keeps
	if extra := len(p.lines.Objects) - p.log.Len(); extra > 0 {
		stale := append([]fyne.CanvasObject(nil), p.lines.Objects[:extra]...)
		for _, o := range stale {
			p.lines.Remove(o)
		}
	}
	p.scroll.ScrollToBottom()
}
