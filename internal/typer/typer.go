// Package typer implements the per-keystroke typing state machine.
package typer

import (
	"time"
	"unicode/utf8"

	"github.com/PsychedelicShayna/smokey/internal/model"
	"github.com/PsychedelicShayna/smokey/internal/text"
)

// overflowCap bounds how many extra characters one overflow slot absorbs;
// anything past it is silently dropped.
const overflowCap = 8

// Event reports what a keystroke did to the test as a whole.
type Event int

const (
	EventNone Event = iota
	// EventCompleted fires when every span is resolved. The caller is
	// expected to start a fresh attempt.
	EventCompleted
)

// State is one live typing attempt over a generated buffer. It owns the
// counters and cursor; the spans stay owned by the buffer and are only
// restyled or, for overflow slots, rewritten in place.
type State struct {
	buffer *text.Buffer
	spans  []*text.Span

	// Done counts spans fully resolved: correct, incorrect, or blank.
	Done     int
	Correct  int
	Mistakes int
	Blanks   int

	// TestLength is the target Done count, the span total of the buffer.
	TestLength int
	// CurrentChar is the expected character at the cursor.
	CurrentChar rune
	// CursorX is the horizontal cursor offset for rendering.
	CursorX int

	start time.Time
}

// NewState begins an attempt over buffer, which must hold at least one
// glyph span. The elapsed-time origin is captured here.
func NewState(buffer *text.Buffer) *State {
	s := &State{
		buffer: buffer,
		spans:  buffer.Flatten(),
		start:  time.Now(),
	}
	s.TestLength = len(s.spans)
	s.setCurrentChar()
	return s
}

// Buffer exposes the underlying lines for rendering.
func (s *State) Buffer() *text.Buffer { return s.buffer }

// Elapsed returns wall-clock time since the attempt began.
func (s *State) Elapsed() time.Duration { return time.Since(s.start) }

func (s *State) fetch(i int) string { return s.spans[i].Content }

// setCurrentChar reads the expected character at Done unconditionally.
func (s *State) setCurrentChar() {
	r, _ := utf8.DecodeRuneInString(s.spans[s.Done].Content)
	s.CurrentChar = r
}

// nextChar returns the expected character at Done, or false when the span
// there is an empty overflow slot.
func (s *State) nextChar() (rune, bool) {
	content := s.spans[s.Done].Content
	if content == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(content)
	return r, true
}

// advance moves the cursor to the next expected character, or reports
// completion once every span is resolved.
func (s *State) advance() Event {
	if s.Done < s.TestLength {
		s.advancePastBlank()
		return EventNone
	}
	return EventCompleted
}

// advancePastBlank sets CurrentChar, skipping an empty overflow slot and
// counting the skip as both done and blank.
func (s *State) advancePastBlank() {
	if r, ok := s.nextChar(); ok {
		s.CurrentChar = r
		return
	}
	s.Done++
	s.Blanks++
	s.setCurrentChar()
}

// Type consumes one ordinary character.
func (s *State) Type(c rune) Event {
	s.CursorX++

	if c == s.CurrentChar {
		s.Correct++
		s.spans[s.Done].Style = text.StyleCorrect
		s.Done++
		return s.advance()
	}

	s.Mistakes++
	if s.CurrentChar == ' ' {
		// The word boundary's overflow slot is still open; park the
		// mistake there instead of resolving the space.
		slot := s.spans[s.Done-1]
		if utf8.RuneCountInString(slot.Content) < overflowCap {
			slot.Content += string(c)
			slot.Style = text.StyleIncorrect
		} else {
			// The cursor was advanced up front; nothing happened here,
			// so reverse it.
			s.CursorX--
		}
		return EventNone
	}
	s.spans[s.Done].Style = text.StyleIncorrect
	s.Done++
	return s.advance()
}

// Backspace undoes the last resolved character, or pops one character of
// overflow content. Mistake and correct counters are never decremented.
func (s *State) Backspace() {
	if s.Done == 0 {
		return
	}
	s.CursorX--

	if s.CurrentChar == ' ' {
		slot := s.spans[s.Done-1]
		if slot.Content == "" {
			// Nothing parked in the slot: step back past it entirely.
			s.Done -= 2
			s.Blanks--
			s.setCurrentChar()
			s.spans[s.Done].Style = text.StylePending
			return
		}
		runes := []rune(slot.Content)
		slot.Content = string(runes[:len(runes)-1])
		if slot.Content == "" {
			slot.Style = text.StylePending
		}
		return
	}

	s.Done--
	s.setCurrentChar()
	s.spans[s.Done].Style = text.StylePending
}

// WordUndo unwinds to the previous word boundary. It is bound to any
// Control chord because terminals disagree on what Ctrl+Backspace sends.
// Up to one trailing overflow slot is unwound first, then spans retreat
// until the unit before Done is a space.
func (s *State) WordUndo() {
	if s.Done == 0 {
		return
	}

	if s.CurrentChar == ' ' {
		// Cursor sits on the space after a word: drop any parked
		// overflow characters and step back past the slot.
		slot := s.spans[s.Done-1]
		s.CursorX -= utf8.RuneCountInString(slot.Content) + 1
		slot.Content = ""
		slot.Style = text.StylePending
		s.Done -= 2
		s.spans[s.Done].Style = text.StylePending
		s.Blanks--
	} else if s.fetch(s.Done-1) == " " {
		// The space itself was already resolved; unwind it and the slot
		// before it.
		s.spans[s.Done-1].Style = text.StylePending
		slot := s.spans[s.Done-2]
		s.CursorX -= utf8.RuneCountInString(slot.Content) + 2
		slot.Content = ""
		slot.Style = text.StylePending
		s.Done -= 3
		s.spans[s.Done].Style = text.StylePending
		s.Blanks--
	}

	for s.Done != 0 && s.fetch(s.Done-1) != " " {
		s.CursorX--
		s.Done--
		s.spans[s.Done].Style = text.StylePending
	}
	s.setCurrentChar()
}

// Summary computes the final statistics for the attempt. Speed follows
// the five-characters-per-word convention.
func (s *State) Summary() model.TestSummary {
	minutes := s.Elapsed().Minutes()
	wpm := 0.0
	if minutes > 0 {
		wpm = float64(s.Correct) / 5.0 / minutes
	}
	acc := 0.0
	if den := s.Correct + s.Mistakes; den > 0 {
		acc = float64(s.Correct) / float64(den)
	}
	return model.TestSummary{
		CorrectChars: s.Correct,
		Mistakes:     s.Mistakes,
		Wpm:          wpm,
		Acc:          acc,
	}
}
