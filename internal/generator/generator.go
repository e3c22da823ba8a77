// Package generator builds the styled test buffer for one attempt.
package generator

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/PsychedelicShayna/smokey/internal/model"
	"github.com/PsychedelicShayna/smokey/internal/text"
	"github.com/PsychedelicShayna/smokey/internal/words"
)

// Chance denominators for the numbers and symbols mods: roughly one word
// in ten is affected when the mod is on.
const (
	numberChance = 10
	symbolChance = 10
)

var symbolRunes = []rune("#$%&*+=@^~")

// Generator produces randomized test buffers.
type Generator struct {
	rnd   *rand.Rand
	punct *punctTable
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		punct: newPunctTable(defaultPunctWeights()),
	}
}

// Test samples cfg.Length words from the word file at path (bounded by
// cfg.WordPool lines), decorates them per the active mods, and lays them
// out into lines of at most cfg.Width characters.
func (g *Generator) Test(cfg model.Config, path string) (*text.Buffer, error) {
	sampled, err := words.Sampled(g.rnd, path, cfg.Length, cfg.WordPool)
	if err != nil {
		return nil, err
	}
	return g.layout(g.decorate(sampled, cfg.Mods), cfg.Width), nil
}

// decorate renders each word into its span group: optional leading glyph,
// the word itself (capitalized when the previous word closed a sentence),
// optional trailing glyphs, then the overflow slot and separator space.
func (g *Generator) decorate(sampled []string, mods map[model.TestMod]struct{}) []text.Line {
	_, punctOn := mods[model.ModPunctuation]
	_, numbersOn := mods[model.ModNumbers]
	_, symbolsOn := mods[model.ModSymbols]

	groups := make([]text.Line, 0, len(sampled))
	capitalize := false
	for _, word := range sampled {
		if numbersOn && g.rnd.Intn(numberChance) == 0 {
			word = g.numberToken()
		}

		var begin, end rune
		if punctOn {
			switch p := g.punct.Choose(g.rnd); p.kind {
			case punctEnd:
				end = p.close
			case punctNormal:
				end = p.close
			case punctPaired:
				begin = p.open
				end = p.close
			case punctDashLike, punctNone:
				// dash-like intentionally renders nothing, see punct.go
			}
		}

		group := make(text.Line, 0, len(word)+4)
		if begin != 0 {
			group = append(group, text.Glyph(begin))
		}
		runes := []rune(word)
		if capitalize && len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		capitalize = punctOn && isSentenceEnd(end)
		for _, r := range runes {
			group = append(group, text.Glyph(r))
		}
		if end != 0 {
			group = append(group, text.Glyph(end))
		}
		if symbolsOn && g.rnd.Intn(symbolChance) == 0 {
			group = append(group, text.Glyph(symbolRunes[g.rnd.Intn(len(symbolRunes))]))
		}
		group = append(group, text.Blank(), text.Glyph(' '))
		groups = append(groups, group)
	}
	return groups
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

func (g *Generator) numberToken() string {
	digits := 1 + g.rnd.Intn(4)
	runes := make([]rune, digits)
	for i := range runes {
		runes[i] = rune('0' + g.rnd.Intn(10))
	}
	return string(runes)
}

// layout folds word span groups into lines bounded by limit visible
// characters (counting each word's trailing space), strips the final
// overflow+space pair so the test does not end on a separator, and moves
// the trailing short line to index 0. The buffer is consumed front to
// back, so the line with the fewest words and no trailing separator
// comes first.
func (g *Generator) layout(groups []text.Line, limit int) *text.Buffer {
	var lines []text.Line
	var current text.Line
	count := 0
	for _, group := range groups {
		w := groupWidth(group)
		if count+w > limit && len(current) > 0 {
			lines = append(lines, current)
			current = nil
			count = 0
		}
		current = append(current, group...)
		count += w
	}
	if n := len(current); n >= 2 {
		current = current[:n-2]
	}
	lines = append(lines, current)
	if len(lines) > 1 {
		last := len(lines) - 1
		lines[0], lines[last] = lines[last], lines[0]
	}
	return &text.Buffer{Lines: lines}
}

func groupWidth(group text.Line) int {
	w := 0
	for _, span := range group {
		w += runewidth.StringWidth(span.Content)
	}
	return w
}
