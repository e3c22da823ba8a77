// Package settings implements the test settings screen.
package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PsychedelicShayna/smokey/internal/model"
)

// section identifies one quadrant of the settings grid.
type section int

const (
	sectionLength section = iota
	sectionPool
	sectionWords
	sectionMods
	sectionNone
)

const sectionCount = 4

// Action tells the host screen what to do after a keystroke.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionStartTest
)

var (
	lengthChoices = []int{10, 15, 25, 50, 100}
	poolSteps     = []int{100, 1000, 5000, 10000, 20000, 50000}
)

var (
	hoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("5"))
	activeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("2"))
	idleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type item string

func (i item) FilterValue() string { return string(i) }
func (i item) Title() string       { return string(i) }
func (i item) Description() string { return "" }

// frequencyChoices builds the word-pool cutoffs offered for a word file of
// wordCount lines: the fixed steps below the count, then the count itself.
func frequencyChoices(wordCount int) []string {
	out := make([]string, 0, len(poolSteps)+1)
	for _, step := range poolSteps {
		if step < wordCount {
			out = append(out, strconv.Itoa(step))
		}
	}
	return append(out, strconv.Itoa(wordCount))
}

// Model is the settings screen: four lists in a 2x2 grid with a hovered
// section and at most one active section.
type Model struct {
	cfg model.Config

	hovered section
	active  section

	lists [sectionCount]list.Model

	counts  map[string]int
	countFn func(name string) (int, error)
	errMsg  string

	width  int
	height int
}

// New builds the settings screen. wordLists names the installed word
// lists; countFn reports the line count of a word list by name.
func New(cfg model.Config, wordLists []string, countFn func(string) (int, error)) Model {
	m := Model{
		cfg:     cfg,
		hovered: sectionLength,
		active:  sectionNone,
		counts:  map[string]int{},
		countFn: countFn,
	}
	if cfg.Mods == nil {
		m.cfg.Mods = map[model.TestMod]struct{}{}
	}

	wordCount := m.wordCount(cfg.Name)
	if wordCount <= 0 {
		wordCount = cfg.WordPool
	}

	lengths := make([]string, len(lengthChoices))
	for i, n := range lengthChoices {
		lengths[i] = strconv.Itoa(n)
	}
	m.lists[sectionLength] = newList("length", lengths)
	m.lists[sectionPool] = newList("frequency", frequencyChoices(wordCount))
	m.lists[sectionWords] = newList("words", wordLists)
	m.lists[sectionMods] = newList("mods", model.ModNames())
	return m
}

func newList(title string, choices []string) list.Model {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = item(c)
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New(items, delegate, 20, 8)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}

// Config returns the current test configuration.
func (m Model) Config() model.Config { return m.cfg }

// SetSize propagates the window size to the quadrant lists.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	listWidth := width/2 - 4
	listHeight := height/2 - 4
	if listWidth < 10 {
		listWidth = 10
	}
	if listHeight < 4 {
		listHeight = 4
	}
	for i := range m.lists {
		m.lists[i].SetSize(listWidth, listHeight)
	}
}

// Update handles one keystroke and reports the resulting action.
func (m Model) Update(msg tea.KeyMsg) (Model, Action) {
	switch msg.String() {
	case "esc":
		if m.hovered != sectionNone {
			return m, ActionQuit
		}
		m.hovered = m.active
		m.active = sectionNone
	case "tab":
		return m, ActionStartTest
	case "enter":
		m.enter()
	case "up", "k":
		m.up()
	case "down", "j":
		m.down()
	case "left", "h":
		m.left()
	case "right", "l":
		m.right()
	}
	return m, ActionNone
}

func (m *Model) up() {
	switch m.hovered {
	case sectionLength:
		m.hovered = sectionWords
	case sectionWords:
		m.hovered = sectionLength
	case sectionPool:
		m.hovered = sectionMods
	case sectionMods:
		m.hovered = sectionPool
	case sectionNone:
		m.lists[m.active].CursorUp()
	}
}

func (m *Model) down() {
	switch m.hovered {
	case sectionLength:
		m.hovered = sectionWords
	case sectionWords:
		m.hovered = sectionLength
	case sectionPool:
		m.hovered = sectionMods
	case sectionMods:
		m.hovered = sectionPool
	case sectionNone:
		m.lists[m.active].CursorDown()
	}
}

func (m *Model) left() {
	switch m.hovered {
	case sectionLength:
		m.hovered = sectionPool
	case sectionWords:
		m.hovered = sectionMods
	case sectionPool:
		m.hovered = sectionLength
	case sectionMods:
		m.hovered = sectionWords
	case sectionNone:
		m.hovered = m.active
		m.active = sectionNone
		m.left()
	}
}

func (m *Model) right() {
	switch m.hovered {
	case sectionLength:
		m.hovered = sectionPool
	case sectionWords:
		m.hovered = sectionMods
	case sectionPool:
		m.hovered = sectionLength
	case sectionMods:
		m.hovered = sectionWords
	case sectionNone:
		m.hovered = m.active
		m.active = sectionNone
		m.right()
	}
}

func (m *Model) enter() {
	if m.hovered != sectionNone {
		m.active = m.hovered
		m.hovered = sectionNone
		return
	}

	switch m.active {
	case sectionLength:
		if n, err := strconv.Atoi(m.selected(sectionLength)); err == nil {
			m.cfg.Length = n
		}
	case sectionPool:
		if n, err := strconv.Atoi(m.selected(sectionPool)); err == nil {
			m.cfg.WordPool = n
		}
	case sectionWords:
		m.applyWordList(m.selected(sectionWords))
	case sectionMods:
		mod, ok := model.ModFromName(m.selected(sectionMods))
		if !ok {
			return
		}
		if _, on := m.cfg.Mods[mod]; on {
			delete(m.cfg.Mods, mod)
		} else {
			m.cfg.Mods[mod] = struct{}{}
		}
	}
}

// applyWordList switches the word list, rebuilding the frequency choices
// and clamping the pool to the file's true line count.
func (m *Model) applyWordList(name string) {
	if name == "" {
		return
	}
	wordCount := m.wordCount(name)
	if wordCount <= 0 {
		return
	}
	m.errMsg = ""
	m.cfg.Name = name
	if m.cfg.WordPool > wordCount {
		m.cfg.WordPool = wordCount
	}
	choices := frequencyChoices(wordCount)
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = item(c)
	}
	m.lists[sectionPool].SetItems(items)
}

// wordCount returns the cached line count for a word list, consulting
// countFn on a miss. Returns 0 on failure and records the error.
func (m *Model) wordCount(name string) int {
	if n, ok := m.counts[name]; ok {
		return n
	}
	if m.countFn == nil {
		return 0
	}
	n, err := m.countFn(name)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to read word list %q: %v", name, err)
		return 0
	}
	m.counts[name] = n
	return n
}

func (m *Model) selected(sec section) string {
	it, ok := m.lists[sec].SelectedItem().(item)
	if !ok {
		return ""
	}
	return string(it)
}

func (m Model) borderFor(sec section) lipgloss.Style {
	switch {
	case m.hovered == sec:
		return hoverStyle
	case m.active == sec:
		return activeStyle
	default:
		return idleStyle
	}
}

// View renders the 2x2 settings grid with a header and key hints.
func (m Model) View() string {
	header := headerStyle.Render(m.cfg.String())
	if m.errMsg != "" {
		header += "\n" + errStyle.Render(m.errMsg)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.borderFor(sectionLength).Render(m.lists[sectionLength].View()),
		m.borderFor(sectionPool).Render(m.lists[sectionPool].View()),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.borderFor(sectionWords).Render(m.lists[sectionWords].View()),
		m.borderFor(sectionMods).Render(m.lists[sectionMods].View()),
	)
	hints := headerStyle.Render("arrows/hjkl move · enter select · tab start test · esc back")

	grid := lipgloss.JoinVertical(lipgloss.Left, header, top, bottom, hints)
	if m.width == 0 || m.height == 0 {
		return grid
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, grid)
}
