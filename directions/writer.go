package directions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/dijkstra"
)

// ErrNilPath is returned by Writer.Path for a nil or empty path.
var ErrNilPath = errors.New("directions: nil path")

// Writer emits route blocks to one or more destinations.
// It is not safe for concurrent use.
type Writer struct {
	out    io.Writer
	blocks int
}

// NewWriter returns a Writer that copies every block to each of ws.
func NewWriter(ws ...io.Writer) *Writer {
	return &Writer{out: io.MultiWriter(ws...)}
}

// OpenLog opens path for appending, creating it if needed.
func OpenLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("directions: open %s: %w", path, err)
	}

	return f, nil
}

// Path writes the block for p: header, separator, one line per hop, then a
// blank line. A single-vertex path has a 0.0km header and no hop lines.
func (w *Writer) Path(p *dijkstra.Path) error {
	if p == nil || len(p.Vertices) == 0 {
		return ErrNilPath
	}

	lines := make([]string, 0, len(p.Hops)+3)
	lines = append(lines, header(p.Source().Label, p.Destination().Label, p.Total), Separator)
	for i, km := range p.Hops {
		lines = append(lines, hop(p.Vertices[i].Label, p.Vertices[i+1].Label, km))
	}

	return w.block(lines)
}

// Unreachable writes the block reporting that no route joins from and to.
func (w *Writer) Unreachable(from, to core.Vertex) error {
	return w.block([]string{noPath(from.Label, to.Label), Separator})
}

// Blocks returns how many blocks were written successfully.
func (w *Writer) Blocks() int { return w.blocks }

// block assembles the whole block so each destination receives one write.
func (w *Writer) block(lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w.out, sb.String()); err != nil {
		return fmt.Errorf("directions: write: %w", err)
	}
	w.blocks++

	return nil
}
