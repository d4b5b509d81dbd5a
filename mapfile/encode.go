package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes m in the layout Decode reads. Vertex indices are rewritten
// as their position so the output always round-trips.
//
// Labels are written after a ", " separator, which Decode strips, so a
// label's own leading comma or space survives. A label containing a line
// break cannot be represented and fails with ErrBadLabel before anything is
// written.
func (m *Map) Encode(w io.Writer) error {
	for i, v := range m.Vertices {
		if strings.ContainsAny(v.Label, "\r\n") {
			return fmt.Errorf("%w: vertex %d", ErrBadLabel, i)
		}
	}

	bw := bufio.NewWriter(w)

	bw.WriteString(strconv.Itoa(len(m.Vertices)) + "\n")
	for i, v := range m.Vertices {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(v.Latitude, 'f', -1, 64))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(v.Longitude, 'f', -1, 64))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(float64(v.Height), 'f', -1, 32))
		bw.WriteString(", ")
		bw.WriteString(v.Label)
		bw.WriteByte('\n')
	}

	bw.WriteString(strconv.Itoa(len(m.Edges)) + "\n")
	for _, e := range m.Edges {
		bw.WriteString(strconv.Itoa(e.From) + " " + strconv.Itoa(e.To) + " " + strconv.Itoa(int(e.Direction)) + "\n")
	}

	bw.WriteString(strconv.Itoa(len(m.Queries)) + "\n")
	for _, q := range m.Queries {
		bw.WriteString(strconv.Itoa(q.Source) + " " + strconv.Itoa(q.Destination) + "\n")
	}

	return bw.Flush()
}
