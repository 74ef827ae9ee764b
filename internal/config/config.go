package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"Kalambury/internal/surface"
)

// ErrInvalid is returned when a configuration value cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Environment variables read by Load.
const (
	EnvWidth        = "KALAMBURY_WIDTH"
	EnvHeight       = "KALAMBURY_HEIGHT"
	EnvColor        = "KALAMBURY_COLOR"
	EnvRoundTime    = "KALAMBURY_ROUND_TIME"
	EnvTitle        = "KALAMBURY_TITLE"
	EnvPlayer       = "KALAMBURY_PLAYER"
	EnvChatHistory  = "KALAMBURY_CHAT_HISTORY"
	EnvResetOnClear = "KALAMBURY_RESET_ON_CLEAR"
)

// Config holds everything the board window needs at startup.
type Config struct {
	Title        string
	Width        float32
	Height       float32
	InitialColor string // CSS color string, seeds the color picker
	RoundTime    string // countdown display text, parsed as the timer seed
	Player       string // author shown next to local chat lines
	ChatHistory  int    // max chat lines kept, 0 means unbounded
	ResetOnClear bool   // clear also ends an in-progress stroke
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Title:        "Kalambury",
		Width:        1024,
		Height:       768,
		InitialColor: "#000000",
		RoundTime:    "90",
		Player:       "me",
		ChatHistory:  200,
	}
}

// Load returns Default overlaid with any environment overrides.
func Load() (Config, error) {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) (Config, error) {
	c := Default()

	if v := getenv(EnvTitle); v != "" {
		c.Title = v
	}
	if v := getenv(EnvWidth); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWidth, v, err)
		}
		c.Width = float32(f)
	}
	if v := getenv(EnvHeight); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvHeight, v, err)
		}
		c.Height = float32(f)
	}
	if v := getenv(EnvColor); v != "" {
		c.InitialColor = v
	}
	if v := getenv(EnvRoundTime); v != "" {
		c.RoundTime = v
	}
	if v := getenv(EnvPlayer); v != "" {
		c.Player = v
	}
	if v := getenv(EnvChatHistory); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvChatHistory, v, err)
		}
		c.ChatHistory = n
	}
	if v := getenv(EnvResetOnClear); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvResetOnClear, v, err)
		}
		c.ResetOnClear = b
	}

	return c, c.Validate()
}

// Validate checks the values Load cannot check while parsing.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.Width, c.Height)
	}
	if c.ChatHistory < 0 {
		return fmt.Errorf("%w: chat history %d", ErrInvalid, c.ChatHistory)
	}
	if _, err := surface.ParseColor(c.InitialColor); err != nil {
		return fmt.Errorf("%w: initial color: %w", ErrInvalid, err)
	}
	return nil
}
