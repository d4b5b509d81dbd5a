package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkSixtyFour/class-djikstra/config"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "map.dat", cfg.Map)
	assert.Equal(t, "directions.dat", cfg.Directions)
	assert.Equal(t, "scan", cfg.Strategy)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "dijkstra.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "campus.osm", cfg.Map)
	assert.Equal(t, "out/directions.dat", cfg.Directions)
	assert.Equal(t, "out/routes.geojson", cfg.GeoJSON)
	assert.Equal(t, "heap", cfg.Strategy)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyEnv(env(map[string]string{
		"DIJKSTRA_MAP":           "other.dat",
		"DIJKSTRA_STRATEGY":      "heap",
		"DIJKSTRA_ALLOW_ORIGINS": "http://a.example, ,http://b.example",
		"DIJKSTRA_RELEASE":       "true",
	}))
	assert.Equal(t, "other.dat", cfg.Map)
	assert.Equal(t, "directions.dat", cfg.Directions)
	assert.Equal(t, "heap", cfg.Strategy)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowOrigins)
	assert.True(t, cfg.Server.Release)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DIJKSTRA_GEOJSON=routes.geojson\n"), 0o644))
	t.Setenv("DIJKSTRA_GEOJSON", "")
	require.NoError(t, os.Unsetenv("DIJKSTRA_GEOJSON"))

	require.NoError(t, config.LoadDotEnv(path, filepath.Join(dir, "absent.env")))

	cfg := config.Default()
	cfg.ApplyEnv(os.Getenv)
	assert.Equal(t, "routes.geojson", cfg.GeoJSON)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty map":     func(c *config.Config) { c.Map = "" },
		"bad strategy":  func(c *config.Config) { c.Strategy = "astar" },
		"bad log level": func(c *config.Config) { c.LogLevel = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
