// Package typing reveals a block of text one character per tick.
//
// A Session is driven by the Bubble Tea loop: Start schedules the first
// TickMsg, Update consumes ticks and schedules the next one, FastForward
// (or a second Start) jumps the cursor to the end. Completion is reported
// exactly once, either by Update or by FastForward.
package typing

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the session with the matching ID by one character.
type TickMsg struct {
	ID int64
}

var lastID atomic.Int64

// Session is the reveal state of one text block. The index only moves
// forward and never exceeds the text length.
type Session struct {
	id       int64
	text     []rune
	index    int
	delay    time.Duration
	running  bool
	finished bool
	failed   bool
	// jumps maps the start of an atomic range to its end.
	jumps map[int]int
}

// New creates a session for text. CRLF line endings are normalised.
func New(text string, delay time.Duration) *Session {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Session{
		id:    lastID.Add(1),
		text:  []rune(text),
		delay: delay,
	}
}

// Failed creates an already finished session showing message, used when
// the source text could not be loaded.
func Failed(message string) *Session {
	s := New(message, 0)
	s.index = len(s.text)
	s.finished = true
	s.failed = true
	return s
}

// ID identifies the session's ticks.
func (s *Session) ID() int64 { return s.id }

// Index is the number of revealed characters.
func (s *Session) Index() int { return s.index }

// Len is the total number of characters.
func (s *Session) Len() int { return len(s.text) }

// Running reports whether ticks are being scheduled.
func (s *Session) Running() bool { return s.running }

// Finished reports whether the whole text has been revealed.
func (s *Session) Finished() bool { return s.finished }

// Failed reports whether the session stands in for a load failure.
func (s *Session) Failed() bool { return s.failed }

// Atomic marks ranges of the text that are revealed in a single tick.
// find receives the normalised text and returns [start, end) rune offsets;
// invalid or empty ranges are ignored.
func (s *Session) Atomic(find func(text string) [][2]int) *Session {
	s.jumps = make(map[int]int)
	for _, r := range find(string(s.text)) {
		if r[0] >= 0 && r[1] > r[0] && r[1] <= len(s.text) {
			s.jumps[r[0]] = r[1]
		}
	}
	return s
}

// Start begins the reveal and returns the first tick. Calling Start on a
// running session is a fast-forward signal: the text is revealed and the
// session finishes, observable through Finished. On a finished session
// Start does nothing. Both cases return nil.
func (s *Session) Start() tea.Cmd {
	if s.finished {
		return nil
	}
	if s.running {
		s.FastForward()
		return nil
	}
	s.running = true
	return s.tick()
}

// Update consumes a TickMsg for this session. done is true exactly once,
// on the tick that reveals the last character.
func (s *Session) Update(msg tea.Msg) (done bool, cmd tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != s.id || !s.running {
		return false, nil
	}
	if s.index < len(s.text) {
		if end, ok := s.jumps[s.index]; ok {
			s.index = end
		} else {
			s.index++
		}
	}
	if s.index >= len(s.text) {
		s.finish()
		return true, nil
	}
	return false, s.tick()
}

// FastForward reveals the rest of the text. On a running session it
// finishes immediately and returns true; the outstanding tick is then
// ignored. On a session that has not started, the next Start finishes on
// its first tick. Finished sessions are left alone.
func (s *Session) FastForward() bool {
	if s.finished {
		return false
	}
	s.index = len(s.text)
	if !s.running {
		return false
	}
	s.finish()
	return true
}

// Text returns the revealed text. Once finished, trailing line breaks are
// dropped so the block does not end with an empty line.
func (s *Session) Text() string {
	out := string(s.text[:s.index])
	if s.finished {
		out = strings.TrimRight(out, "\n")
	}
	return out
}

func (s *Session) finish() {
	s.running = false
	s.finished = true
}

func (s *Session) tick() tea.Cmd {
	id := s.id
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}
