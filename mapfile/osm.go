package mapfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/osm"
)

// DecodeOSM converts an OpenStreetMap XML extract into a Map.
//
// Every way carrying a highway tag contributes one edge per consecutive node
// pair. oneway=yes/true/1 gives OneWay in way order, oneway=-1 gives OneWay
// against it, anything else TwoWay. Nodes become vertices on first use, in
// way order; their label is the name of the first way that uses them (or
// "node <id>" for unnamed ways) and their height the ele tag, if numeric.
// The returned Map has no queries.
func DecodeOSM(r io.Reader) (*Map, error) {
	var data osm.OSM
	if err := xml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("mapfile: decode osm: %w", err)
	}

	nodes := make(map[osm.NodeID]*osm.Node, len(data.Nodes))
	for _, n := range data.Nodes {
		nodes[n.ID] = n
	}

	m := &Map{}
	handles := make(map[osm.NodeID]int)
	vertex := func(id osm.NodeID, label string) (int, error) {
		if h, ok := handles[id]; ok {
			return h, nil
		}
		n, ok := nodes[id]
		if !ok {
			return 0, fmt.Errorf("%w: node %d", ErrMissingNode, id)
		}
		if label == "" {
			label = "node " + strconv.FormatInt(int64(id), 10)
		}
		var height float32
		if ele, err := strconv.ParseFloat(n.Tags.Find("ele"), 32); err == nil {
			height = float32(ele)
		}
		h := len(m.Vertices)
		m.Vertices = append(m.Vertices, VertexRecord{
			Index:     h,
			Latitude:  n.Lat,
			Longitude: n.Lon,
			Height:    height,
			Label:     label,
		})
		handles[id] = h

		return h, nil
	}

	for _, w := range data.Ways {
		if w.Tags.Find("highway") == "" {
			continue
		}
		name := w.Tags.Find("name")
		dir, reverse := OneWay, false
		switch w.Tags.Find("oneway") {
		case "yes", "true", "1":
		case "-1":
			reverse = true
		default:
			dir = TwoWay
		}

		ids := w.Nodes.NodeIDs()
		for i := 0; i+1 < len(ids); i++ {
			from, err := vertex(ids[i], name)
			if err != nil {
				return nil, fmt.Errorf("mapfile: way %d: %w", w.ID, err)
			}
			to, err := vertex(ids[i+1], name)
			if err != nil {
				return nil, fmt.Errorf("mapfile: way %d: %w", w.ID, err)
			}
			if reverse {
				from, to = to, from
			}
			m.Edges = append(m.Edges, EdgeRecord{From: from, To: to, Direction: dir})
		}
	}

	return m, nil
}
