package model

import "testing"

func TestDecodeMods(t *testing.T) {
	mods := DecodeMods(0b00000101)
	if len(mods) != 2 {
		t.Fatalf("expected 2 mods, got %d", len(mods))
	}
	if _, ok := mods[ModPunctuation]; !ok {
		t.Fatalf("expected punctuation mod")
	}
	if _, ok := mods[ModSymbols]; !ok {
		t.Fatalf("expected symbols mod")
	}

	if zero := DecodeMods(0); len(zero) != 0 {
		t.Fatalf("expected empty set for zero flags, got %v", zero)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for flags := uint8(0); flags < 1<<3; flags++ {
		if got := EncodeMods(DecodeMods(flags)); got != flags {
			t.Fatalf("round trip of %03b gave %03b", flags, got)
		}
	}
}

func TestModNameBijection(t *testing.T) {
	for _, name := range ModNames() {
		mod, ok := ModFromName(name)
		if !ok {
			t.Fatalf("name %q did not resolve", name)
		}
		if mod.Name() != name {
			t.Fatalf("mod %v maps back to %q, want %q", mod, mod.Name(), name)
		}
	}
	if _, ok := ModFromName("nope"); ok {
		t.Fatalf("unexpected resolution for unknown name")
	}
}

func TestConfigString(t *testing.T) {
	cfg := Config{Name: "english", Length: 25, WordPool: 5000}
	if got := cfg.String(); got != "english: 25/5000" {
		t.Fatalf("unexpected config string: %q", got)
	}
	cfg.Mods = map[TestMod]struct{}{ModPunctuation: {}, ModNumbers: {}}
	if got := cfg.String(); got != "english: 25/5000 + !? 17" {
		t.Fatalf("unexpected config string with mods: %q", got)
	}
}
