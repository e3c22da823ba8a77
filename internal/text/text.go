// Package text holds the styled span buffer a typing test runs over.
package text

// Style tags a span's resolution state. Rendering colors are the UI
// layer's concern; the core only moves spans between these three states.
type Style int

const (
	StylePending Style = iota
	StyleCorrect
	StyleIncorrect
)

// String implements fmt.Stringer for test failure output.
func (s Style) String() string {
	switch s {
	case StylePending:
		return "pending"
	case StyleCorrect:
		return "correct"
	case StyleIncorrect:
		return "incorrect"
	}
	return "unknown"
}

// Span is the smallest independently styled unit of test text: a single
// glyph, or the empty overflow slot before each inter-word space that
// absorbs extra characters typed past a word's end.
type Span struct {
	Content string
	Style   Style
}

// Glyph returns a span holding a single pending character.
func Glyph(r rune) *Span {
	return &Span{Content: string(r)}
}

// Blank returns the empty overflow slot span.
func Blank() *Span {
	return &Span{}
}

// Line is one visual row of spans.
type Line []*Span

// Buffer is the ordered sequence of lines for one test attempt,
// consumed front to back. It is created fresh per attempt and owns its
// spans; the typing state machine mutates them in place.
type Buffer struct {
	Lines []Line
}

// Flatten returns every span in consumption order.
func (b *Buffer) Flatten() []*Span {
	spans := make([]*Span, 0, b.SpanCount())
	for _, line := range b.Lines {
		spans = append(spans, line...)
	}
	return spans
}

// SpanCount reports the total number of spans across all lines.
func (b *Buffer) SpanCount() int {
	n := 0
	for _, line := range b.Lines {
		n += len(line)
	}
	return n
}
