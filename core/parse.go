package core

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseReport summarizes what Parse kept and what it skipped.
type ParseReport struct {
	// Lines is the number of lines examined.
	Lines int
	// Declarations is the number of lines that produced a declaration.
	Declarations int
	// Skipped lists the 1-based numbers of malformed lines.
	Skipped []int
}

// Parse reads adjacency-list text, one declaration per line:
//
//	A: [B, C]
//	B: D, E
//
// Brackets are optional. Lines without a node id or without anything after
// the first colon are skipped and reported, never fatal. Neighbors that are
// not declared themselves become vertices without outgoing edges. Every edge
// weighs DefaultWeight.
func Parse(r io.Reader) (*Graph, ParseReport, error) {
	var rep ParseReport
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, rep, errors.Wrap(err, "core: read graph input")
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, rep, ErrEmptyInput
	}

	g := NewGraph()
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		rep.Lines++
		id, neighbors, ok := parseLine(sc.Text())
		if !ok {
			rep.Skipped = append(rep.Skipped, rep.Lines)
			continue
		}
		if err := g.Declare(id, neighbors); err != nil {
			rep.Skipped = append(rep.Skipped, rep.Lines)
			continue
		}
		rep.Declarations++
	}
	if err := sc.Err(); err != nil {
		return nil, rep, errors.Wrap(err, "core: scan graph input")
	}

	return g, rep, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Graph, ParseReport, error) {
	return Parse(strings.NewReader(s))
}

// parseLine splits "id: [a, b]". Anything after a second colon is dropped.
func parseLine(line string) (string, []string, bool) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return "", nil, false
	}
	id := strings.TrimSpace(parts[0])
	if id == "" || parts[1] == "" {
		return "", nil, false
	}
	list := strings.NewReplacer("[", "", "]", "").Replace(strings.TrimSpace(parts[1]))
	neighbors := make([]string, 0, strings.Count(list, ",")+1)
	for _, tok := range strings.Split(list, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			neighbors = append(neighbors, tok)
		}
	}

	return id, neighbors, true
}

// FormatWeight renders a weight or distance the way narration shows it:
// the shortest exact decimal, or "Infinity".
func FormatWeight(w float64) string {
	switch {
	case math.IsInf(w, 1):
		return "Infinity"
	case math.IsInf(w, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(w, 'f', -1, 64)
}
