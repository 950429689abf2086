package game

import "strings"

// GameLog is a bounded FIFO of log lines shown in the HUD log panel.
type GameLog struct {
	entries  []string
	maxSize  int
	maxWidth int
}

// NewGameLog creates a log that keeps the most recent maxSize lines.
// Lines longer than maxWidth are wrapped; maxWidth <= 0 disables wrapping.
func NewGameLog(maxSize, maxWidth int) *GameLog {
	return &GameLog{
		entries:  make([]string, 0, maxSize),
		maxSize:  maxSize,
		maxWidth: maxWidth,
	}
}

// Add appends a message, evicting the oldest lines if full.
func (l *GameLog) Add(text string) {
	for _, line := range wrapText(text, l.maxWidth) {
		if len(l.entries) >= l.maxSize {
			copy(l.entries, l.entries[1:])
			l.entries[len(l.entries)-1] = line
		} else {
			l.entries = append(l.entries, line)
		}
	}
}

// Entries returns the lines oldest first. The slice must not be modified.
func (l *GameLog) Entries() []string {
	return l.entries
}

// Len returns the number of lines held.
func (l *GameLog) Len() int {
	return len(l.entries)
}

// Reset drops every line.
func (l *GameLog) Reset() {
	l.entries = l.entries[:0]
}

// wrapText splits text into lines no longer than maxWidth.
func wrapText(s string, maxWidth int) []string {
	if maxWidth <= 0 || len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
