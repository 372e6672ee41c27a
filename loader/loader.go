package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrEmptyInput is returned when r yields no non-blank, non-comment
// lines at all, so no shape could even be guessed.
var ErrEmptyInput = errors.New("loader: input is empty")

// Load reads r and returns the normalized vertex count and edge list.
// Malformed lines are collected into a single combined error via
// go.uber.org/multierr rather than aborting on the first one; when err is
// non-nil the returned (n, edges) reflect every line that DID parse, so a
// caller that wants best-effort behavior can still use them.
func Load(r io.Reader) (n int32, edges [][2]int32, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	firstLine, ok := firstNonCommentLine(scanner)
	if !ok {
		return 0, nil, ErrEmptyInput
	}

	if headerN, isHeader := parseHeaderLine(firstLine); isHeader {
		return loadHeaderStyle(headerN, scanner)
	}
	return loadSNAPStyle(firstLine, scanner)
}

// firstNonCommentLine advances scanner past blank and comment lines and
// returns the first line worth inspecting.
func firstNonCommentLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}

// parseHeaderLine reports whether line is exactly one non-negative
// integer, the header-style shape's first line.
func parseHeaderLine(line string) (int32, bool) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, false
	}
	v, convErr := strconv.ParseInt(fields[0], 10, 32)
	if convErr != nil || v < 0 {
		return 0, false
	}
	return int32(v), true
}

func loadHeaderStyle(n int32, scanner *bufio.Scanner) (int32, [][2]int32, error) {
	var edges [][2]int32
	var combined error
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		u, v, parseErr := parseEdgeLine(line)
		if parseErr != nil {
			combined = multierr.Append(combined, errors.Wrapf(parseErr, "line %d", lineNo))
			continue
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			combined = multierr.Append(combined, errors.Errorf("line %d: vertex out of range [0,%d): %d,%d", lineNo, n, u, v))
			continue
		}
		edges = append(edges, [2]int32{u, v})
	}
	if scanErr := scanner.Err(); scanErr != nil {
		combined = multierr.Append(combined, errors.Wrap(scanErr, "reading input"))
	}
	return n, edges, combined
}

// loadSNAPStyle re-parses firstLine as a "u v" pair (it was provisionally
// rejected as a header line) and then continues scanning, compacting
// arbitrary non-negative ids to [0..N) in first-seen order.
func loadSNAPStyle(firstLine string, scanner *bufio.Scanner) (int32, [][2]int32, error) {
	ids := make(map[int64]int32)
	compact := func(raw int64) int32 {
		if c, seen := ids[raw]; seen {
			return c
		}
		c := int32(len(ids))
		ids[raw] = c
		return c
	}

	var edges [][2]int32
	var combined error
	lineNo := 0

	process := func(lineNo int, line string) {
		rawU, rawV, parseErr := parseSNAPEdgeLine(line)
		if parseErr != nil {
			combined = multierr.Append(combined, errors.Wrapf(parseErr, "line %d", lineNo))
			return
		}
		edges = append(edges, [2]int32{compact(rawU), compact(rawV)})
	}

	lineNo++
	process(lineNo, firstLine)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		process(lineNo, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		combined = multierr.Append(combined, errors.Wrap(scanErr, "reading input"))
	}
	return int32(len(ids)), edges, combined
}

func parseEdgeLine(line string) (int32, int32, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	u, errU := strconv.ParseInt(fields[0], 10, 32)
	if errU != nil {
		return 0, 0, errors.Wrap(errU, "parsing u")
	}
	v, errV := strconv.ParseInt(fields[1], 10, 32)
	if errV != nil {
		return 0, 0, errors.Wrap(errV, "parsing v")
	}
	return int32(u), int32(v), nil
}

func parseSNAPEdgeLine(line string) (int64, int64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	u, errU := strconv.ParseInt(fields[0], 10, 64)
	if errU != nil {
		return 0, 0, errors.Wrap(errU, "parsing u")
	}
	if u < 0 {
		return 0, 0, errors.Errorf("negative vertex id: %d", u)
	}
	v, errV := strconv.ParseInt(fields[1], 10, 64)
	if errV != nil {
		return 0, 0, errors.Wrap(errV, "parsing v")
	}
	if v < 0 {
		return 0, 0, errors.Errorf("negative vertex id: %d", v)
	}
	return u, v, nil
}
