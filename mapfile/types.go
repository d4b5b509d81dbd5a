package mapfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every *SyntaxError.
	ErrMalformed = errors.New("mapfile: malformed input")

	// ErrBadDirection indicates an edge direction other than OneWay/TwoWay.
	ErrBadDirection = errors.New("mapfile: unknown edge direction")

	// ErrBadLabel indicates a vertex label Encode cannot write on one line.
	ErrBadLabel = errors.New("mapfile: label contains a line break")

	// ErrMissingNode indicates an OSM way referencing a node absent from the extract.
	ErrMissingNode = errors.New("mapfile: way references missing node")
)

// SyntaxError reports where decoding failed.
type SyntaxError struct {
	Line int    // 1-based line number, 0 at end of input
	Msg  string // what was expected
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("mapfile: end of input: %s", e.Msg)
	}

	return fmt.Sprintf("mapfile: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *SyntaxError) Unwrap() error { return ErrMalformed }

// Direction is the edge direction type of an edge record.
type Direction int

const (
	// OneWay adds a single edge from → to.
	OneWay Direction = 1

	// TwoWay adds from → to and to → from.
	TwoWay Direction = 2
)

// VertexRecord is one intersection line.
type VertexRecord struct {
	Index     int // as written in the file; handles follow line order
	Latitude  float64
	Longitude float64
	Height    float32
	Label     string
}

// EdgeRecord is one street line.
type EdgeRecord struct {
	From      int
	To        int
	Direction Direction
}

// QueryRecord is one source/destination case.
type QueryRecord struct {
	Source      int
	Destination int
}

// Map is a decoded street-map file.
type Map struct {
	Vertices []VertexRecord
	Edges    []EdgeRecord
	Queries  []QueryRecord
}
