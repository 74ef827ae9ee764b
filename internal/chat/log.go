package chat

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one line of the chat log.
type Entry struct {
	ID     string    `json:"id"`
	Author string    `json:"username,omitempty"`
	Text   string    `json:"msg"`
	Time   time.Time `json:"-"`
	System bool      `json:"system,omitempty"`
}

// Stamp is the HH:MM time shown next to the entry.
func (e Entry) Stamp() string {
	return e.Time.Format("15:04")
}

// Log is a local, in-memory chat log. Nothing is sent anywhere.
type Log struct {
	author  string
	limit   int
	entries []Entry
	now     func() time.Time
	mu      sync.RWMutex

	// OnAppend is called for every entry added to the log.
	OnAppend func(Entry)
}

// NewLog returns an empty log whose local lines are written by author. A
// positive limit caps how many entries are kept.
func NewLog(author string, limit int) *Log {
	return &Log{author: author, limit: limit, now: time.Now}
}

// Submit appends text as a local line. Surrounding whitespace is trimmed and
// empty submissions are ignored; ok reports whether an entry was added.
func (l *Log) Submit(text string) (e Entry, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, false
	}
	return l.append(Entry{Author: l.author, Text: text}), true
}

// System appends a line not written by any player, such as a round-end
// announcement.
func (l *Log) System(text string) Entry {
	return l.append(Entry{Text: text, System: true})
}

func (l *Log) append(e Entry) Entry {
	e.ID = uuid.NewString()
	e.Time = l.now()

	l.mu.Lock()
	l.entries = append(l.entries, e)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = append([]Entry(nil), l.entries[len(l.entries)-l.limit:]...)
	}
	onAppend := l.OnAppend
	l.mu.Unlock()

	log.Printf("[CHAT] %s: %s", e.Author, e.Text)
	if onAppend != nil {
		onAppend(e)
	}
	return e
}

// Entries returns the log, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries kept.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
