package generator

import (
	"math/rand"
	"sort"
)

// punctKind enumerates punctuation treatments for a word.
type punctKind int

const (
	punctNone punctKind = iota
	// punctEnd closes a sentence and capitalizes the following word.
	punctEnd
	// punctNormal is a comma-like separator, no capitalization.
	punctNormal
	// punctPaired wraps the word in an opening and closing glyph.
	punctPaired
	// punctDashLike is drawn with real weight but renders nothing.
	// TODO render dash-like punctuation between words, "word - word".
	punctDashLike
)

// punct is one variant of the punctuation distribution. open is the glyph
// before the word for paired variants; close is the trailing glyph.
type punct struct {
	kind        punctKind
	open, close rune
}

type weightedPunct struct {
	p punct
	w int
}

// punctTable is an immutable weighted categorical distribution over
// punctuation variants. It is built once at startup and shared by
// reference; Choose is the only operation.
type punctTable struct {
	variants []punct
	cum      []int
	total    int
}

// defaultPunctWeights mirrors rough prose frequency: overwhelmingly no
// punctuation, commas and full stops next, everything else rare.
func defaultPunctWeights() []weightedPunct {
	return []weightedPunct{
		{punct{kind: punctEnd, close: '.'}, 65},
		{punct{kind: punctEnd, close: '?'}, 6},
		{punct{kind: punctEnd, close: '!'}, 3},
		{punct{kind: punctNormal, close: ','}, 61},
		{punct{kind: punctNormal, close: ';'}, 3},
		{punct{kind: punctNormal, close: ':'}, 3},
		{punct{kind: punctPaired, open: '<', close: '>'}, 2},
		{punct{kind: punctPaired, open: '(', close: ')'}, 3},
		{punct{kind: punctPaired, open: '{', close: '}'}, 2},
		{punct{kind: punctPaired, open: '[', close: ']'}, 2},
		{punct{kind: punctPaired, open: '"', close: '"'}, 13},
		{punct{kind: punctPaired, open: '\'', close: '\''}, 10},
		{punct{kind: punctDashLike, close: '-'}, 10},
		{punct{kind: punctNone}, 800},
	}
}

func newPunctTable(entries []weightedPunct) *punctTable {
	t := &punctTable{
		variants: make([]punct, 0, len(entries)),
		cum:      make([]int, 0, len(entries)),
	}
	for _, e := range entries {
		t.total += e.w
		t.variants = append(t.variants, e.p)
		t.cum = append(t.cum, t.total)
	}
	return t
}

// Choose draws a single variant from the distribution.
func (t *punctTable) Choose(rnd *rand.Rand) punct {
	n := rnd.Intn(t.total)
	idx := sort.SearchInts(t.cum, n+1)
	return t.variants[idx]
}
