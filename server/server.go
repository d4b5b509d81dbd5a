// Package server exposes a built street map over HTTP.
//
//	GET /health                      graph size
//	GET /vertices                    every intersection with its handle
//	GET /route?from=&to=[&format=]   shortest route, JSON or GeoJSON
//	GET /reachable?from=[&maxHops=][&maxStreetKm=]
//	                                 handles reachable from a source
//
// The graph is shared read-only by every request; each route query runs
// its own Dijkstra state.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/MarkSixtyFour/class-djikstra/bfs"
	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/dijkstra"
	"github.com/MarkSixtyFour/class-djikstra/directions"
)

// Options configures a Server.
type Options struct {
	Strategy     dijkstra.Strategy
	AllowOrigins []string // empty allows every origin
	Logger       *slog.Logger
}

// Server answers route queries against one graph.
type Server struct {
	g      *core.Graph
	opts   Options
	log    *slog.Logger
	engine *gin.Engine
}

// New builds the router for g. The caller picks the gin mode.
func New(g *core.Graph, opts Options) *Server {
	s := &Server{g: g, opts: opts, log: opts.Logger}
	if s.log == nil {
		s.log = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	cc := cors.DefaultConfig()
	if len(opts.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = opts.AllowOrigins
	}
	r.Use(cors.New(cc))

	r.GET("/health", s.health)
	r.GET("/vertices", s.vertices)
	r.GET("/route", s.route)
	r.GET("/reachable", s.reachable)
	s.engine = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start).String())
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"vertices": s.g.VertexCount(),
		"edges":    s.g.EdgeCount(),
	})
}

type vertexJSON struct {
	ID        int     `json:"id"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    float32 `json:"height"`
}

func (s *Server) vertices(c *gin.Context) {
	vs := s.g.Vertices()
	out := make([]vertexJSON, len(vs))
	for i, v := range vs {
		out[i] = vertexJSON{ID: i, Label: v.Label, Latitude: v.Latitude, Longitude: v.Longitude, Height: v.Height}
	}
	c.JSON(http.StatusOK, out)
}

type hopJSON struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Km   float64 `json:"km"`
}

// RouteResponse is the JSON body of a solved /route query.
type RouteResponse struct {
	From       int       `json:"from"`
	To         int       `json:"to"`
	TotalKm    float64   `json:"total_km"`
	Vertices   []int     `json:"vertices"`
	Hops       []hopJSON `json:"hops"`
	Directions string    `json:"directions"`
}

func (s *Server) route(c *gin.Context) {
	from, ok := s.handleParam(c, "from")
	if !ok {
		return
	}
	to, ok := s.handleParam(c, "to")
	if !ok {
		return
	}

	p, err := dijkstra.ShortestPath(s.g, from, to, dijkstra.WithStrategy(s.opts.Strategy))
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("format") == "geojson" {
		fc := directions.NewCollection()
		if err := fc.Add(p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/geo+json", data)
		return
	}

	var text strings.Builder
	if err := directions.NewWriter(&text).Path(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := RouteResponse{
		From:       from,
		To:         to,
		TotalKm:    p.Total,
		Vertices:   p.Indices,
		Hops:       make([]hopJSON, len(p.Hops)),
		Directions: text.String(),
	}
	for i, km := range p.Hops {
		resp.Hops[i] = hopJSON{From: p.Indices[i], To: p.Indices[i+1], Km: km}
	}
	c.JSON(http.StatusOK, resp)
}

// reachable lists what from reaches, in BFS order with the hop count of
// each handle. maxHops bounds the search depth and maxStreetKm skips
// streets longer than the given length.
func (s *Server) reachable(c *gin.Context) {
	from, ok := s.handleParam(c, "from")
	if !ok {
		return
	}

	opts := []bfs.Option{bfs.WithContext(c.Request.Context())}
	if raw, ok := c.GetQuery("maxHops"); ok {
		hops, err := strconv.Atoi(raw)
		if err != nil || hops < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad maxHops " + strconv.Quote(raw)})
			return
		}
		if hops == 0 {
			c.JSON(http.StatusOK, gin.H{"from": from, "reachable": []int{from}, "hops": []int{0}})
			return
		}
		opts = append(opts, bfs.WithMaxDepth(hops))
	}
	if raw, ok := c.GetQuery("maxStreetKm"); ok {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(limit >= 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad maxStreetKm " + strconv.Quote(raw)})
			return
		}
		opts = append(opts, bfs.WithFilterNeighbor(func(curr, next int) bool {
			return s.g.Distance(curr, next) <= limit
		}))
	}

	ids := []int{}
	hops := []int{}
	opts = append(opts, bfs.WithOnVisit(func(v, depth int) error {
		ids = append(ids, v)
		hops = append(hops, depth)
		return nil
	}))
	if _, err := bfs.BFS(s.g, from, opts...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "reachable": ids, "hops": hops})
}

// handleParam reads a vertex handle from the query string, answering 400
// itself when it is missing, malformed or out of range.
func (s *Server) handleParam(c *gin.Context, name string) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter " + name})
		return 0, false
	}
	h, err := strconv.Atoi(raw)
	if err != nil || !s.g.HasVertex(h) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no vertex " + strconv.Quote(raw)})
		return 0, false
	}

	return h, true
}
