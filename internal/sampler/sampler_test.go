package sampler

import (
	"math/rand"
	"testing"
)

func TestSampleCountRangeOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, tc := range []struct {
		count int
		bound int
	}{
		{3, 10},
		{25, 5000},
		{100, 100},
		{50, 1},
	} {
		got := Sample(rnd, tc.count, tc.bound)
		if len(got) != tc.count {
			t.Fatalf("Sample(%d, %d) returned %d indices", tc.count, tc.bound, len(got))
		}
		for i, idx := range got {
			if idx < 0 || idx >= tc.bound {
				t.Fatalf("Sample(%d, %d) index %d out of range: %d", tc.count, tc.bound, i, idx)
			}
			if i > 0 && got[i-1] > idx {
				t.Fatalf("Sample(%d, %d) not sorted at %d: %v", tc.count, tc.bound, i, got)
			}
		}
	}
}

func TestSampleSmallBoundNeverExceeds(t *testing.T) {
	// Pool bound 10, length 3, over many seeds.
	for seed := int64(0); seed < 100; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		for _, idx := range Sample(rnd, 3, 10) {
			if idx >= 10 {
				t.Fatalf("seed %d produced index %d beyond bound", seed, idx)
			}
		}
	}
}

func TestSampleDegenerate(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if got := Sample(rnd, 0, 10); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
	if got := Sample(rnd, 5, 0); got != nil {
		t.Fatalf("expected nil for zero bound, got %v", got)
	}
}
