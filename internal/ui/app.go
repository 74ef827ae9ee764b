package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Kalambury/internal/chat"
	"Kalambury/internal/config"
	"Kalambury/internal/timer"
)

// RoundOverMessage is announced when the countdown reaches zero.
const RoundOverMessage = "Round over!"

// Board is the assembled game window.
type Board struct {
	Window    fyne.Window
	Doc       *Document
	Chat      *ChatPanel
	Countdown *timer.Countdown
}

// NewBoard builds the window and wires every control. It fails when a
// required control cannot be created or the countdown text is not a number.
func NewBoard(a fyne.App, cfg config.Config) (*Board, error) {
	w := a.NewWindow(cfg.Title)
	w.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	board, err := NewBoardWidget(cfg.InitialColor)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	board.Recorder().SetResetOnClear(cfg.ResetOnClear)

	colors, err := NewColorInput(cfg.InitialColor, w)
	if err != nil {
		return nil, fmt.Errorf("color input: %w", err)
	}
	colors.OnChanged = func(c string) {
		if err := board.SetColor(c); err != nil {
			fyne.LogError("Could not set stroke color", err)
		}
	}

	doc := &Document{
		Canvas:       board,
		ColorInput:   colors,
		ClearTrigger: widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.Clear),
		Countdown:    widget.NewLabel(cfg.RoundTime),
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	seed, err := timer.ParseSeed(doc.Countdown.Text)
	if err != nil {
		return nil, fmt.Errorf("countdown: %w", err)
	}

	chatLog := chat.NewLog(cfg.Player, cfg.ChatHistory)
	panel := NewChatPanel(chatLog)

	cd := timer.New(seed)
	cd.OnTick = func(n int) {
		fyne.Do(func() { doc.Countdown.SetText(strconv.Itoa(n)) })
	}
	cd.OnExpire = func() {
		fyne.Do(func() {
			chatLog.System(RoundOverMessage)
			dialog.ShowInformation("Round over", RoundOverMessage, w)
		})
	}

	split := container.NewHSplit(board, panel.Object())
	split.Offset = 0.75
	toolbar := NewToolbar(colors, doc.ClearTrigger, doc.Countdown)
	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, split))

	return &Board{Window: w, Doc: doc, Chat: panel, Countdown: cd}, nil
}

// Start begins the round countdown.
func (b *Board) Start(ctx context.Context) {
	b.Countdown.Start(ctx)
}

// RunApp opens the game window and blocks until it is closed.
func RunApp(cfg config.Config) error {
	a := app.New()
	b, err := NewBoard(a, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b.Start(ctx)

	log.Printf("[UI] Showing board %q", cfg.Title)
	b.Window.ShowAndRun()
	return nil
}
