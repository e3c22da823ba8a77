package tui

import (
	"strings"
	"testing"

	"github.com/PsychedelicShayna/smokey/internal/model"
	"github.com/PsychedelicShayna/smokey/internal/text"
	"github.com/PsychedelicShayna/smokey/internal/typer"
)

func spanLine(words ...string) text.Line {
	var line text.Line
	for i, w := range words {
		for _, r := range w {
			line = append(line, text.Glyph(r))
		}
		if i < len(words)-1 {
			line = append(line, text.Blank(), text.Glyph(' '))
		}
	}
	return line
}

func testState(t *testing.T, lines ...text.Line) *typer.State {
	t.Helper()
	return typer.NewState(&text.Buffer{Lines: lines})
}

func TestRenderTestJoinsLines(t *testing.T) {
	m := &Model{state: testState(t,
		spanLine("cat", "dog"),
		spanLine("fish"),
	)}
	out := m.renderTest()
	for _, want := range []string{"cat", "dog", "fish", "\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q: %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Fatalf("newline count = %d, want 1", got)
	}
}

func TestRenderTestShowsOverflowContent(t *testing.T) {
	m := &Model{state: testState(t, spanLine("cat", "dog"))}
	for _, r := range "catxx" {
		m.state.Type(r)
	}
	out := m.renderTest()
	if !strings.Contains(out, "xx") {
		t.Fatalf("overflow slot content not rendered: %q", out)
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := &Model{
		state:   testState(t, spanLine("cat", "dog")),
		hasLast: true,
		lastSummary: model.TestSummary{
			Wpm: 72.4,
			Acc: 0.978,
		},
	}
	m.state.Type('c')
	m.state.Type('a')

	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Progress 25%", "Last 72.4 WPM", "97.8%", "Tab restart"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
