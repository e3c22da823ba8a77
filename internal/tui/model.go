// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PsychedelicShayna/smokey/internal/generator"
	"github.com/PsychedelicShayna/smokey/internal/model"
	"github.com/PsychedelicShayna/smokey/internal/settings"
	"github.com/PsychedelicShayna/smokey/internal/text"
	"github.com/PsychedelicShayna/smokey/internal/typer"
)

type screen int

const (
	screenTest screen = iota
	screenSettings
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg      model.Config
	gen      *generator.Generator
	settings settings.Model
	state    *typer.State
	wordPath func(name string) string

	width  int
	height int
	scr    screen

	lastSummary model.TestSummary
	hasLast     bool

	err error
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model and generates the first test.
func NewModel(cfg model.Config, gen *generator.Generator, wordLists []string, wordPath func(string) string, countFn func(string) (int, error)) (*Model, error) {
	m := &Model{
		cfg:      cfg,
		gen:      gen,
		wordPath: wordPath,
		settings: settings.New(cfg, wordLists, countFn),
	}
	if err := m.restart(); err != nil {
		return nil, err
	}
	return m, nil
}

// Err reports a test generation failure raised during Update.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.settings.SetSize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		return m, tickCmd()
	case tea.KeyMsg:
		if m.scr == screenSettings {
			return m.updateSettings(msg)
		}
		return m.updateTest(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		return m, tea.Quit
	case tea.KeyTab:
		if err := m.restart(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.state.Backspace()
		return m, nil
	case tea.KeyF2:
		m.scr = screenSettings
		return m, nil
	case tea.KeySpace:
		return m.typeRunes([]rune{' '})
	case tea.KeyRunes:
		return m.typeRunes(msg.Runes)
	default:
		// Every Control chord deletes the word in progress.
		if strings.HasPrefix(msg.String(), "ctrl+") {
			m.state.WordUndo()
		}
		return m, nil
	}
}

func (m *Model) typeRunes(runes []rune) (tea.Model, tea.Cmd) {
	for _, r := range runes {
		if m.state.Type(r) == typer.EventCompleted {
			m.lastSummary = m.state.Summary()
			m.hasLast = true
			if err := m.restart(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, action := m.settings.Update(msg)
	m.settings = next
	switch action {
	case settings.ActionQuit:
		return m, tea.Quit
	case settings.ActionStartTest:
		m.cfg = m.settings.Config()
		m.scr = screenTest
		if err := m.restart(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

// restart generates a fresh test for the current configuration.
func (m *Model) restart() error {
	buf, err := m.gen.Test(m.cfg, m.wordPath(m.cfg.Name))
	if err != nil {
		return fmt.Errorf("failed to generate test: %w", err)
	}
	m.state = typer.NewState(buf)
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.scr == screenSettings {
		return m.settings.View()
	}
	content := m.renderTest()
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func styleFor(s text.Style) lipgloss.Style {
	switch s {
	case text.StyleCorrect:
		return correctStyle
	case text.StyleIncorrect:
		return incorrectStyle
	default:
		return pendingStyle
	}
}

func (m *Model) renderTest() string {
	var b strings.Builder
	idx := 0
	for li, line := range m.state.Buffer().Lines {
		if li > 0 {
			b.WriteRune('\n')
		}
		for _, span := range line {
			style := styleFor(span.Style)
			if idx == m.state.Done {
				style = style.Underline(true)
			}
			if span.Content != "" {
				b.WriteString(style.Render(span.Content))
			}
			idx++
		}
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	if m.state == nil || m.state.TestLength == 0 {
		return ""
	}
	progress := int(float64(m.state.Done) / float64(m.state.TestLength) * 100)
	live := m.state.Summary()
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("%.1f WPM", live.Wpm),
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastSummary.Wpm, m.lastSummary.Acc*100))
	}
	segments = append(segments, "Tab restart · F2 settings · Esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}
