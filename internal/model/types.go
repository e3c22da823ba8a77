// Package model defines shared data structures.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// TestMod toggles one aspect of test generation.
type TestMod int

const (
	ModPunctuation TestMod = iota
	ModNumbers
	ModSymbols
)

// modEntries fixes the bijection between mod, config name, display glyph,
// and bitflag. Lookups are linear; the table is three entries long.
var modEntries = [...]struct {
	mod   TestMod
	name  string
	glyph string
	bit   uint8
}{
	{ModPunctuation, "punctuation", "!?", 1 << 0},
	{ModNumbers, "numbers", "17", 1 << 1},
	{ModSymbols, "symbols", "#$", 1 << 2},
}

// Name returns the config-file name of the mod.
func (m TestMod) Name() string {
	for _, e := range modEntries {
		if e.mod == m {
			return e.name
		}
	}
	return "unknown"
}

// Glyph returns the two-character display form of the mod.
func (m TestMod) Glyph() string {
	for _, e := range modEntries {
		if e.mod == m {
			return e.glyph
		}
	}
	return "??"
}

// ModFromName resolves a config-file name to a mod.
func ModFromName(name string) (TestMod, bool) {
	for _, e := range modEntries {
		if e.name == name {
			return e.mod, true
		}
	}
	return 0, false
}

// ModNames lists every mod name in table order.
func ModNames() []string {
	names := make([]string, 0, len(modEntries))
	for _, e := range modEntries {
		names = append(names, e.name)
	}
	return names
}

// EncodeMods packs a mod set into its bitflag form.
func EncodeMods(mods map[TestMod]struct{}) uint8 {
	var flags uint8
	for _, e := range modEntries {
		if _, ok := mods[e.mod]; ok {
			flags |= e.bit
		}
	}
	return flags
}

// DecodeMods unpacks a bitflag into a mod set. Unknown bits are ignored.
func DecodeMods(flags uint8) map[TestMod]struct{} {
	mods := make(map[TestMod]struct{})
	for _, e := range modEntries {
		if flags&e.bit != 0 {
			mods[e.mod] = struct{}{}
		}
	}
	return mods
}

// Config defines one typing test setup.
type Config struct {
	Name     string // word list name
	Length   int    // target word count
	WordPool int    // sampling bound over the word file, in lines
	Width    int    // character budget per generated line
	Mods     map[TestMod]struct{}
}

// String renders the config the way the settings header shows it, e.g.
// "english: 25/5000 + !? 17".
func (c Config) String() string {
	var mods []string
	for m := range c.Mods {
		mods = append(mods, m.Glyph())
	}
	sort.Strings(mods)
	suffix := ""
	if len(mods) > 0 {
		suffix = " + " + strings.Join(mods, " ")
	}
	return fmt.Sprintf("%s: %d/%d%s", c.Name, c.Length, c.WordPool, suffix)
}

// TestSummary captures the final statistics of one test attempt.
type TestSummary struct {
	CorrectChars int
	Mistakes     int
	Wpm          float64
	Acc          float64
}
