package mapfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/mapfile"
)

func TestDecodeFile_Sample(t *testing.T) {
	m, err := mapfile.DecodeFile(filepath.Join("testdata", "map.dat"))
	require.NoError(t, err)

	require.Len(t, m.Vertices, 5)
	assert.Equal(t, mapfile.VertexRecord{
		Index: 0, Latitude: 44.974305, Longitude: -93.231225, Height: 256, Label: "Washington Ave SE",
	}, m.Vertices[0])
	// Space-separated and comma-space separated labels.
	assert.Equal(t, "Oak St SE", m.Vertices[1].Label)
	assert.Equal(t, "University Ave SE", m.Vertices[2].Label)
	assert.Equal(t, float32(254.5), m.Vertices[2].Height)

	require.Len(t, m.Edges, 5)
	assert.Equal(t, mapfile.EdgeRecord{From: 2, To: 3, Direction: mapfile.OneWay}, m.Edges[2])
	assert.Equal(t, []mapfile.QueryRecord{{0, 2}, {2, 0}, {0, 4}}, m.Queries)
}

func TestMap_Build(t *testing.T) {
	m, err := mapfile.DecodeFile(filepath.Join("testdata", "map.dat"))
	require.NoError(t, err)

	g, err := m.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	// Four two-way records and one one-way record.
	assert.Equal(t, 2*3+2, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(3, 2))
	assert.True(t, g.HasEdge(1, 0))

	v, err := g.VertexAt(4)
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{Latitude: 44.99, Longitude: -93.25, Height: 250, Label: "Nowhere Rd"}, v)
}

func TestMap_BuildErrors(t *testing.T) {
	m := &mapfile.Map{
		Vertices: []mapfile.VertexRecord{{Label: "A"}, {Longitude: 1, Label: "B"}},
		Edges:    []mapfile.EdgeRecord{{From: 0, To: 1, Direction: 3}},
	}
	_, err := m.Build()
	require.ErrorIs(t, err, mapfile.ErrBadDirection)

	m.Edges = []mapfile.EdgeRecord{{From: 0, To: 2, Direction: mapfile.TwoWay}}
	_, err = m.Build()
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestDecode_OptionalCasesAndComments(t *testing.T) {
	in := "# tiny map\n2\n0,0,0,0,A\n\n1,0,1,0,B\n1\n0,1,2\n"
	m, err := mapfile.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 2)
	assert.Equal(t, []mapfile.EdgeRecord{{From: 0, To: 1, Direction: mapfile.TwoWay}}, m.Edges)
	assert.Empty(t, m.Queries)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]struct {
		in   string
		line int
	}{
		"empty":            {"", 0},
		"bad count":        {"two\n", 1},
		"negative count":   {"-1\n", 1},
		"short vertices":   {"2\n0,0,0,0,A\n", 0},
		"bad latitude":     {"1\n0,north,0,0,A\n", 2},
		"bad height":       {"1\n0,0,0,high,A\n", 2},
		"bad index":        {"1\nx,0,0,0,A\n", 2},
		"short edge":       {"1\n0,0,0,0,A\n1\n0 0\n", 4},
		"non-numeric edge": {"1\n0,0,0,0,A\n1\n0 a 1\n", 4},
		"short case":       {"1\n0,0,0,0,A\n0\n2\n0 0\n", 0},
		"bad case":         {"1\n0,0,0,0,A\n0\n1\n0\n", 5},
		"huge count":       {"9000000000000000000\n", 0},
		"huge edge count":  {"1\n0,0,0,0,A\n9000000000000000000\n0 0 1\n", 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mapfile.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, mapfile.ErrMalformed)
			var se *mapfile.SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.line, se.Line)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	want, err := mapfile.DecodeFile(filepath.Join("testdata", "map.dat"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	got, err := mapfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncode_LabelEdges(t *testing.T) {
	want := &mapfile.Map{Vertices: []mapfile.VertexRecord{
		{Index: 0, Label: " Leading space"},
		{Index: 1, Label: ",Comma"},
		{Index: 2, Label: ", both"},
		{Index: 3, Label: ""},
	}}

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	got, err := mapfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want.Vertices, got.Vertices)
}

func TestEncode_LineBreakInLabel(t *testing.T) {
	m := &mapfile.Map{Vertices: []mapfile.VertexRecord{{Label: "A"}, {Label: "two\nlines"}}}

	var buf bytes.Buffer
	require.ErrorIs(t, m.Encode(&buf), mapfile.ErrBadLabel)
	assert.Zero(t, buf.Len())
}

func TestDecodeOSM(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "campus.osm"))
	require.NoError(t, err)
	defer f.Close()

	m, err := mapfile.DecodeOSM(f)
	require.NoError(t, err)

	require.Len(t, m.Vertices, 4)
	assert.Equal(t, "Washington Ave SE", m.Vertices[0].Label)
	assert.Equal(t, float32(256), m.Vertices[0].Height)
	assert.Equal(t, 44.974, m.Vertices[0].Latitude)
	assert.Equal(t, "University Ave SE", m.Vertices[3].Label)

	assert.Equal(t, []mapfile.EdgeRecord{
		{From: 0, To: 1, Direction: mapfile.TwoWay},
		{From: 1, To: 2, Direction: mapfile.TwoWay},
		{From: 2, To: 3, Direction: mapfile.OneWay},
		{From: 3, To: 0, Direction: mapfile.OneWay},
	}, m.Edges)
	assert.Empty(t, m.Queries)

	g, err := m.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestDecodeOSM_MissingNode(t *testing.T) {
	in := `<osm><node id="1" lat="0" lon="0"/><way id="9"><nd ref="1"/><nd ref="2"/><tag k="highway" v="road"/></way></osm>`
	_, err := mapfile.DecodeOSM(strings.NewReader(in))
	require.ErrorIs(t, err, mapfile.ErrMissingNode)
}
