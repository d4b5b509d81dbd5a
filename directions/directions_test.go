package directions_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/dijkstra"
	"github.com/MarkSixtyFour/class-djikstra/directions"
)

// equator returns A-B-C one degree apart on the equator, both directions.
func equator(t *testing.T) (*core.Graph, []int) {
	t.Helper()
	g := core.NewGraph()
	ids := []int{
		g.AddVertex(core.Vertex{Latitude: 0, Longitude: 0, Label: "A"}),
		g.AddVertex(core.Vertex{Latitude: 0, Longitude: 1, Label: "B"}),
		g.AddVertex(core.Vertex{Latitude: 0, Longitude: 2, Label: "C"}),
	}
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1])
		require.NoError(t, err)
		_, err = g.AddEdge(ids[i+1], ids[i])
		require.NoError(t, err)
	}

	return g, ids
}

func TestFormatKm(t *testing.T) {
	cases := map[float64]string{
		0:         "0.0",
		6371:      "6371.0",
		12742:     "12742.0",
		0.1:       "0.1",
		1.0 / 3.0: "0.33333334",
		2.5:       "2.5",
		// No exponent form at either end of the range.
		0.0001:   "0.0001",
		0.000025: "0.000025",
		1e7:      "10000000.0",
		12345678: "12345678.0",
	}
	for in, want := range cases {
		assert.Equal(t, want, directions.FormatKm(in), "FormatKm(%v)", in)
	}
}

func TestWriter_Path(t *testing.T) {
	g, ids := equator(t)
	p, err := dijkstra.ShortestPath(g, ids[0], ids[2])
	require.NoError(t, err)

	var console, log bytes.Buffer
	w := directions.NewWriter(&console, &log)
	require.NoError(t, w.Path(p))

	want := "Path from A to C (12742.0km)\n" +
		"-----------------------\n" +
		"Go 6371.0km from A to B\n" +
		"Go 6371.0km from B to C\n" +
		"\n"
	assert.Equal(t, want, console.String())
	assert.Equal(t, console.String(), log.String())
	assert.Equal(t, 1, w.Blocks())
}

func TestWriter_SingleVertexPath(t *testing.T) {
	g, ids := equator(t)
	p, err := dijkstra.ShortestPath(g, ids[1], ids[1])
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, directions.NewWriter(&buf).Path(p))
	assert.Equal(t, "Path from B to B (0.0km)\n-----------------------\n\n", buf.String())
}

func TestWriter_Unreachable(t *testing.T) {
	var buf bytes.Buffer
	w := directions.NewWriter(&buf)
	require.NoError(t, w.Unreachable(core.Vertex{Label: "A"}, core.Vertex{Label: "Z"}))
	assert.Equal(t, "No path from A to Z\n-----------------------\n\n", buf.String())
}

func TestWriter_NilPath(t *testing.T) {
	var buf bytes.Buffer
	w := directions.NewWriter(&buf)
	require.ErrorIs(t, w.Path(nil), directions.ErrNilPath)
	assert.Zero(t, buf.Len())
	assert.Zero(t, w.Blocks())
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriter_WriteFailureReturned(t *testing.T) {
	g, ids := equator(t)
	p, err := dijkstra.ShortestPath(g, ids[0], ids[1])
	require.NoError(t, err)
	before := *p

	w := directions.NewWriter(failingWriter{})
	require.ErrorIs(t, w.Path(p), errDiskFull)
	assert.Zero(t, w.Blocks())
	assert.Equal(t, before, *p)
}

func TestOpenLog_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directions.dat")

	for _, label := range []string{"first", "second"} {
		f, err := directions.OpenLog(path)
		require.NoError(t, err)
		w := directions.NewWriter(f)
		require.NoError(t, w.Unreachable(core.Vertex{Label: label}, core.Vertex{Label: "X"}))
		require.NoError(t, f.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"No path from first to X\n-----------------------\n\n"+
			"No path from second to X\n-----------------------\n\n",
		string(data))
}

func TestOpenLog_BadPath(t *testing.T) {
	_, err := directions.OpenLog(filepath.Join(t.TempDir(), "missing", "directions.dat"))
	require.Error(t, err)
}

func TestCollection(t *testing.T) {
	g, ids := equator(t)
	p, err := dijkstra.ShortestPath(g, ids[0], ids[2])
	require.NoError(t, err)

	c := directions.NewCollection()
	require.NoError(t, c.Add(p))
	require.ErrorIs(t, c.Add(nil), directions.ErrNilPath)
	assert.Equal(t, 1, c.Len())

	path := filepath.Join(t.TempDir(), "routes.geojson")
	require.NoError(t, c.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	ls, ok := f.Geometry.(orb.LineString)
	require.True(t, ok, "geometry %T", f.Geometry)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}, {2, 0}}, ls)
	assert.Equal(t, "A", f.Properties["source"])
	assert.Equal(t, "C", f.Properties["destination"])
	assert.InDelta(t, 12742.0, f.Properties["total_km"], 1e-9)
	assert.EqualValues(t, 2, f.Properties["hops"])
}
