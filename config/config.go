// Package config loads driver and server settings.
//
// Settings are layered, later layers winning:
//
//  1. Default values.
//  2. A YAML file (Load).
//  3. Variables from a .env file (LoadDotEnv) and the process environment
//     (ApplyEnv), all prefixed with DIJKSTRA_.
//  4. Command-line flags, applied by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MarkSixtyFour/class-djikstra/dijkstra"
	"github.com/MarkSixtyFour/class-djikstra/logging"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "DIJKSTRA_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every setting of the driver and the server.
type Config struct {
	Map        string       `yaml:"map"`        // map.dat or .osm input
	Directions string       `yaml:"directions"` // append-only output, "" disables it
	GeoJSON    string       `yaml:"geojson"`    // optional FeatureCollection output
	Strategy   string       `yaml:"strategy"`   // "scan" or "heap"
	LogLevel   string       `yaml:"log-level"`
	Server     ServerConfig `yaml:"server"`
}

// ServerConfig configures the HTTP query surface.
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow-origins"` // empty allows all
	Release      bool     `yaml:"release"`       // gin release mode
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Map:        "map.dat",
		Directions: "directions.dat",
		Strategy:   dijkstra.StrategyScan.String(),
		LogLevel:   "info",
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadDotEnv copies variables from the given .env files (".env" when none
// are named) into the process environment without overriding variables
// already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides c with non-empty DIJKSTRA_* variables from getenv.
// DIJKSTRA_ALLOW_ORIGINS is a comma-separated list.
func (c *Config) ApplyEnv(getenv func(string) string) {
	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	str("MAP", &c.Map)
	str("DIRECTIONS", &c.Directions)
	str("GEOJSON", &c.GeoJSON)
	str("STRATEGY", &c.Strategy)
	str("LOG_LEVEL", &c.LogLevel)
	str("ADDR", &c.Server.Addr)

	if v := getenv(EnvPrefix + "ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Server.AllowOrigins = append(c.Server.AllowOrigins, o)
			}
		}
	}
	if v := getenv(EnvPrefix + "RELEASE"); v != "" {
		c.Server.Release = v == "1" || strings.EqualFold(v, "true")
	}
}

// Validate checks the fields that have a closed set of values.
func (c Config) Validate() error {
	if c.Map == "" {
		return fmt.Errorf("%w: map path is empty", ErrInvalid)
	}
	if _, err := dijkstra.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}
