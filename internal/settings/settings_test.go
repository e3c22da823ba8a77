package settings

import (
	"fmt"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PsychedelicShayna/smokey/internal/model"
)

func TestFrequencyChoices(t *testing.T) {
	cases := []struct {
		wordCount int
		want      []string
	}{
		{69000, []string{"100", "1000", "5000", "10000", "20000", "50000", "69000"}},
		{15889, []string{"100", "1000", "5000", "10000", "15889"}},
		{1000, []string{"100", "1000"}},
		{20, []string{"20"}},
	}
	for _, tc := range cases {
		got := frequencyChoices(tc.wordCount)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("frequencyChoices(%d) = %v, want %v", tc.wordCount, got, tc.want)
		}
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	counts := map[string]int{"english": 5000, "tiny": 40}
	countFn := func(name string) (int, error) {
		n, ok := counts[name]
		if !ok {
			return 0, fmt.Errorf("no such list %q", name)
		}
		return n, nil
	}
	cfg := model.Config{
		Name:     "english",
		Length:   25,
		WordPool: 5000,
		Width:    65,
		Mods:     map[model.TestMod]struct{}{},
	}
	return New(cfg, []string{"english", "tiny"}, countFn)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func drive(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var act Action
		m, act = m.Update(key(k))
		if act != ActionNone {
			t.Fatalf("key %q: unexpected action %d", k, act)
		}
	}
	return m
}

func TestSelectLengthUpdatesConfig(t *testing.T) {
	m := testModel(t)

	// Activate the length quadrant, move to the third entry, select it.
	m = drive(t, m, "enter", "down", "down", "enter")
	if got := m.Config().Length; got != 25 {
		t.Fatalf("Length = %d, want 25", got)
	}
	m = drive(t, m, "down", "down", "enter")
	if got := m.Config().Length; got != 100 {
		t.Fatalf("Length = %d, want 100", got)
	}
}

func TestToggleMod(t *testing.T) {
	m := testModel(t)

	// Hover length -> pool -> mods, activate, toggle the first mod twice.
	m = drive(t, m, "right", "down", "enter", "enter")
	if _, on := m.Config().Mods[model.ModPunctuation]; !on {
		t.Fatal("punctuation mod not enabled after toggle")
	}
	m = drive(t, m, "enter")
	if _, on := m.Config().Mods[model.ModPunctuation]; on {
		t.Fatal("punctuation mod still enabled after second toggle")
	}
}

func TestSwitchWordListClampsPool(t *testing.T) {
	m := testModel(t)

	// Hover words, activate, select "tiny" (second entry).
	m = drive(t, m, "down", "enter", "down", "enter")
	cfg := m.Config()
	if cfg.Name != "tiny" {
		t.Fatalf("Name = %q, want tiny", cfg.Name)
	}
	if cfg.WordPool != 40 {
		t.Fatalf("WordPool = %d, want clamped 40", cfg.WordPool)
	}
	if got := choicesOf(m, sectionPool); !reflect.DeepEqual(got, []string{"40"}) {
		t.Fatalf("frequency choices = %v, want [40]", got)
	}
}

func TestEscapeLeavesActiveSection(t *testing.T) {
	m := testModel(t)

	m = drive(t, m, "enter")
	if m.hovered != sectionNone || m.active != sectionLength {
		t.Fatalf("after enter: hovered=%d active=%d", m.hovered, m.active)
	}
	m = drive(t, m, "esc")
	if m.hovered != sectionLength || m.active != sectionNone {
		t.Fatalf("after esc: hovered=%d active=%d", m.hovered, m.active)
	}

	_, act := m.Update(key("esc"))
	if act != ActionQuit {
		t.Fatalf("esc at top level: action = %d, want ActionQuit", act)
	}
}

func TestTabStartsTest(t *testing.T) {
	m := testModel(t)
	_, act := m.Update(key("tab"))
	if act != ActionStartTest {
		t.Fatalf("tab: action = %d, want ActionStartTest", act)
	}
}

func choicesOf(m Model, sec section) []string {
	items := m.lists[sec].Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(it.(item))
	}
	return out
}
