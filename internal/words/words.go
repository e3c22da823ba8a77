// Package words reads sampled words from line-oriented word files.
package words

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/PsychedelicShayna/smokey/internal/sampler"
)

// Sampled draws count sorted line offsets below bound, extracts the
// matching words from the file at path in a single forward scan, and
// shuffles the result. The sample size is bounded by the requested test
// length, so the full in-memory shuffle after the streaming read is cheap.
func Sampled(rnd *rand.Rand, path string, count, bound int) ([]string, error) {
	indices := sampler.Sample(rnd, count, bound)
	out, err := ReadSampled(path, indices)
	if err != nil {
		return nil, err
	}
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out, nil
}

// ReadSampled extracts the words at the given sorted line indices. The
// file is read forward exactly once and never fully buffered; a repeated
// index reuses the previously extracted word instead of re-reading.
func ReadSampled(path string, indices []int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return readSampled(file, indices)
}

func readSampled(r io.Reader, indices []int) ([]string, error) {
	if len(indices) == 0 {
		return nil, nil
	}
	scanner := bufio.NewScanner(r)
	out := make([]string, 0, len(indices))
	last := -1
	for _, idx := range indices {
		if idx < last {
			return nil, fmt.Errorf("sampled indices out of order: %d after %d", idx, last)
		}
		if idx == last {
			out = append(out, out[len(out)-1])
			continue
		}
		word, err := advance(scanner, idx-last)
		if err != nil {
			return nil, err
		}
		out = append(out, word)
		last = idx
	}
	return out, nil
}

// advance consumes n lines and returns the last one.
func advance(scanner *bufio.Scanner, n int) (string, error) {
	var line string
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read word list: %w", err)
			}
			return "", fmt.Errorf("word list ended before sampled line")
		}
		line = scanner.Text()
	}
	return strings.TrimSpace(line), nil
}

// CountLines reports the number of lines in the file at path.
func CountLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to count word list lines: %w", err)
	}
	return count, nil
}
