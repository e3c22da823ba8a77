// Package sampler draws sorted random line offsets.
package sampler

import (
	"math/rand"
	"sort"
)

// Sample returns count indices drawn uniformly from [0, bound), sorted
// ascending. Duplicates are permitted. The ascending order lets a reader
// reach every sampled line in a single forward scan of the source; only
// the gap between consecutive indices matters, never a backward seek.
//
// bound must cover the true number of lines in the source; validating that
// is the configuration layer's job, not the sampler's.
func Sample(rnd *rand.Rand, count, bound int) []int {
	if count <= 0 || bound <= 0 {
		return nil
	}
	out := make([]int, count)
	for i := range out {
		out[i] = rnd.Intn(bound)
	}
	sort.Ints(out)
	return out
}
