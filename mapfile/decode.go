package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Decode parses a street-map file from r.
func Decode(r io.Reader) (*Map, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	m := &Map{}

	// Vertices.
	n, err := lr.count("vertex count")
	if err != nil {
		return nil, err
	}
	m.Vertices = make([]VertexRecord, 0, capHint(n))
	for i := 0; i < n; i++ {
		line, err := lr.next("vertex record")
		if err != nil {
			return nil, err
		}
		v, err := parseVertex(line)
		if err != nil {
			return nil, lr.errorf("%v", err)
		}
		m.Vertices = append(m.Vertices, v)
	}

	// Edges.
	n, err = lr.count("edge count")
	if err != nil {
		return nil, err
	}
	m.Edges = make([]EdgeRecord, 0, capHint(n))
	for i := 0; i < n; i++ {
		f, err := lr.ints("edge record", 3)
		if err != nil {
			return nil, err
		}
		m.Edges = append(m.Edges, EdgeRecord{From: f[0], To: f[1], Direction: Direction(f[2])})
	}

	// Cases are optional.
	if !lr.more() {
		return m, lr.err()
	}
	n, err = lr.count("case count")
	if err != nil {
		return nil, err
	}
	m.Queries = make([]QueryRecord, 0, capHint(n))
	for i := 0; i < n; i++ {
		f, err := lr.ints("case record", 2)
		if err != nil {
			return nil, err
		}
		m.Queries = append(m.Queries, QueryRecord{Source: f[0], Destination: f[1]})
	}

	return m, lr.err()
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// maxPrealloc bounds the capacity taken on trust from a count line; longer
// sections grow by append.
const maxPrealloc = 1 << 16

func capHint(n int) int { return min(n, maxPrealloc) }

// parseVertex splits "idx,lat,lon,height,label" keeping the label intact.
func parseVertex(line string) (VertexRecord, error) {
	var v VertexRecord
	rest := line
	var tok string

	tok, rest = cut(rest)
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return v, fmt.Errorf("vertex index %q is not an integer", tok)
	}
	v.Index = idx

	tok, rest = cut(rest)
	if v.Latitude, err = strconv.ParseFloat(tok, 64); err != nil {
		return v, fmt.Errorf("latitude %q is not a number", tok)
	}
	tok, rest = cut(rest)
	if v.Longitude, err = strconv.ParseFloat(tok, 64); err != nil {
		return v, fmt.Errorf("longitude %q is not a number", tok)
	}
	tok, rest = cut(rest)
	h, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return v, fmt.Errorf("height %q is not a number", tok)
	}
	v.Height = float32(h)

	// Labels are separated by a comma, a space, or both.
	rest = strings.TrimPrefix(rest, ",")
	rest = strings.TrimPrefix(rest, " ")
	v.Label = rest

	return v, nil
}

// cut skips leading separators and returns the next token and what follows
// it. The separator that ends the token is left in the remainder.
func cut(s string) (string, string) {
	s = strings.TrimLeftFunc(s, isSep)
	if i := strings.IndexFunc(s, isSep); i >= 0 {
		return s[:i], s[i:]
	}

	return s, ""
}

// fields splits s on separators.
func fields(s string) []string { return strings.FieldsFunc(s, isSep) }

func isSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r'
}

// lineReader yields significant lines and tracks line numbers for errors.
type lineReader struct {
	sc      *bufio.Scanner
	line    int
	pending *string
}

// more reports whether another significant line exists.
func (lr *lineReader) more() bool {
	if lr.pending != nil {
		return true
	}
	for lr.sc.Scan() {
		lr.line++
		s := strings.TrimRight(lr.sc.Text(), "\r")
		if t := strings.TrimSpace(s); t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		lr.pending = &s

		return true
	}

	return false
}

// next returns the next significant line or a SyntaxError naming want.
func (lr *lineReader) next(want string) (string, error) {
	if !lr.more() {
		if err := lr.err(); err != nil {
			return "", err
		}
		return "", &SyntaxError{Msg: "missing " + want}
	}
	s := *lr.pending
	lr.pending = nil

	return s, nil
}

// count reads a line whose first token is a non-negative integer.
func (lr *lineReader) count(want string) (int, error) {
	line, err := lr.next(want)
	if err != nil {
		return 0, err
	}
	f := fields(line)
	if len(f) == 0 {
		return 0, lr.errorf("missing %s", want)
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || n < 0 {
		return 0, lr.errorf("%s %q is not a non-negative integer", want, f[0])
	}

	return n, nil
}

// ints reads a line with at least k integer tokens and returns the first k.
func (lr *lineReader) ints(want string, k int) ([]int, error) {
	line, err := lr.next(want)
	if err != nil {
		return nil, err
	}
	f := fields(line)
	if len(f) < k {
		return nil, lr.errorf("%s needs %d fields, got %d", want, k, len(f))
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		if out[i], err = strconv.Atoi(f[i]); err != nil {
			return nil, lr.errorf("%s field %d %q is not an integer", want, i+1, f[i])
		}
	}

	return out, nil
}

func (lr *lineReader) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Line: lr.line, Msg: fmt.Sprintf(format, args...)}
}

func (lr *lineReader) err() error { return lr.sc.Err() }
