// Command dijkstra reads a street map with its route queries, prints
// turn-by-turn directions for each query and appends them to a log file.
//
// Usage:
//
//	dijkstra [-config dijkstra.yaml] [-map map.dat] [-out directions.dat]
//	         [-geojson routes.geojson] [-strategy scan|heap] [-v]
//	dijkstra -serve [-addr :8080] [-map map.dat]
//
// A map whose name ends in .osm is read as an OpenStreetMap XML extract.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/MarkSixtyFour/class-djikstra/bfs"
	"github.com/MarkSixtyFour/class-djikstra/config"
	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/dfs"
	"github.com/MarkSixtyFour/class-djikstra/dijkstra"
	"github.com/MarkSixtyFour/class-djikstra/directions"
	"github.com/MarkSixtyFour/class-djikstra/logging"
	"github.com/MarkSixtyFour/class-djikstra/mapfile"
	"github.com/MarkSixtyFour/class-djikstra/server"
)

const (
	msgNotFound   = "File not found, is it in the right path?"
	msgWriteError = "Couldn't write to the directions file, exiting..."
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, serve, err := settings(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	strategy, _ := dijkstra.ParseStrategy(cfg.Strategy)

	m, err := loadMap(cfg.Map)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stdout, msgNotFound)
		log.Error("open map", "path", cfg.Map, "err", err)
		return 1
	}
	if err != nil {
		log.Error("read map", "path", cfg.Map, "err", err)
		return 1
	}
	g, err := m.Build()
	if err != nil {
		log.Error("build graph", "path", cfg.Map, "err", err)
		return 1
	}
	describe(log, g)

	if serve {
		if cfg.Server.Release {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := server.New(g, server.Options{
			Strategy:     strategy,
			AllowOrigins: cfg.Server.AllowOrigins,
			Logger:       log,
		})
		if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
			log.Error("serve", "err", err)
			return 1
		}
		return 0
	}

	if err := solve(log, g, m.Queries, cfg, strategy, stdout); err != nil {
		if errors.Is(err, errWrite) {
			fmt.Fprintln(stdout, msgWriteError)
		}
		log.Error("solve", "err", err)
		return 1
	}

	return 0
}

// settings layers defaults, the YAML file, .env, the environment and flags.
func settings(args []string, stderr io.Writer) (config.Config, bool, error) {
	fset := flag.NewFlagSet("dijkstra", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		cfgPath  = fset.String("config", "", "YAML configuration file")
		envFile  = fset.String("env", ".env", "dotenv file with DIJKSTRA_* variables")
		mapPath  = fset.String("map", "", "street map (map.dat layout or .osm)")
		outPath  = fset.String("out", "", "directions log, appended to")
		geoPath  = fset.String("geojson", "", "write solved routes as GeoJSON")
		strategy = fset.String("strategy", "", "vertex selection: scan or heap")
		addr     = fset.String("addr", "", "listen address with -serve")
		serve    = fset.Bool("serve", false, "serve route queries over HTTP")
		verbose  = fset.Bool("v", false, "debug logging")
	)
	if err := fset.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		return config.Config{}, false, err
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return cfg, false, err
	}
	cfg.ApplyEnv(os.Getenv)

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.Map = *mapPath
		case "out":
			cfg.Directions = *outPath
		case "geojson":
			cfg.GeoJSON = *geoPath
		case "strategy":
			cfg.Strategy = *strategy
		case "addr":
			cfg.Server.Addr = *addr
		}
	})
	if *verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, *serve, cfg.Validate()
}

func loadMap(path string) (*mapfile.Map, error) {
	if !strings.EqualFold(filepath.Ext(path), ".osm") {
		return mapfile.DecodeFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return mapfile.DecodeOSM(f)
}

// describe logs graph size, how much of it vertex 0 reaches, and whether
// one-way streets split it into strongly connected components.
func describe(log *slog.Logger, g *core.Graph) {
	st := g.Stats()
	log.Info("map loaded",
		"vertices", st.VertexCount,
		"edges", st.EdgeCount,
		"isolated", st.Isolated,
		"km", directions.FormatKm(st.TotalWeight))
	if st.VertexCount == 0 {
		return
	}
	if ids, err := bfs.Reachable(g, 0); err == nil {
		log.Debug("reachability", "from", 0, "reachable", len(ids))
	}

	comps, err := dfs.StronglyConnected(g)
	if err != nil || len(comps) < 2 {
		return
	}
	largest := 0
	for _, c := range comps {
		if len(c) > largest {
			largest = len(c)
		}
	}
	log.Warn("some routes have no way back", "components", len(comps), "largest", largest)
}

var errWrite = errors.New("write directions")

// solve answers every query in file order.
func solve(log *slog.Logger, g *core.Graph, queries []mapfile.QueryRecord, cfg config.Config, strategy dijkstra.Strategy, stdout io.Writer) error {
	outs := []io.Writer{stdout}
	if cfg.Directions != "" {
		f, err := directions.OpenLog(cfg.Directions)
		if err != nil {
			return fmt.Errorf("%w: %w", errWrite, err)
		}
		defer f.Close()
		outs = append(outs, f)
	}
	w := directions.NewWriter(outs...)

	var routes *directions.Collection
	if cfg.GeoJSON != "" {
		routes = directions.NewCollection()
	}

	for i, q := range queries {
		if !g.HasVertex(q.Source) || !g.HasVertex(q.Destination) {
			log.Warn("skipping query with unknown vertex", "case", i, "source", q.Source, "destination", q.Destination)
			continue
		}

		p, err := dijkstra.ShortestPath(g, q.Source, q.Destination, dijkstra.WithStrategy(strategy))
		switch {
		case errors.Is(err, dijkstra.ErrUnreachable):
			from, _ := g.VertexAt(q.Source)
			to, _ := g.VertexAt(q.Destination)
			err = w.Unreachable(from, to)
		case err != nil:
			return err
		default:
			log.Debug("route", "case", i, "hops", p.HopCount(), "km", p.Total)
			if routes != nil {
				if err := routes.Add(p); err != nil {
					return err
				}
			}
			err = w.Path(p)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", errWrite, err)
		}
	}

	if routes != nil {
		if err := routes.WriteFile(cfg.GeoJSON); err != nil {
			return err
		}
		log.Info("routes written", "path", cfg.GeoJSON, "features", routes.Len())
	}

	return nil
}
