// Package seedsource reads newline-delimited world seed lists the way the
// batch filter's reference tooling did: one unsigned 64-bit integer per
// line, tolerant of a missing trailing newline and of either LF or CRLF
// line endings, but strict about every line parsing as a whole integer.
package seedsource

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadSeeds reads every seed from r, one per line. A line that isn't
// entirely consumed by the integer parse (trailing garbage, a decimal
// point, a sign where none is allowed) is a hard error, not a skip —
// mirroring the original tool's std::stoull-plus-size-check validation
// rather than silently dropping malformed entries into a user's seed
// batch.
func ReadSeeds(r io.Reader) ([]int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var seeds []int64
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		seed, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seedsource: line %d: %q is not a valid seed: %w", lineNo, line, err)
		}
		seeds = append(seeds, int64(seed))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seedsource: reading seed list: %w", err)
	}
	return seeds, nil
}
