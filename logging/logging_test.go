package logging_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/MarkSixtyFour/class-djikstra/logging"
)

var linePrefix = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `)

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info")
	require.NoError(t, err)

	log.Info("route solved", "from", "Oak St", "km", 1.5)

	line := buf.String()
	require.True(t, linePrefix.MatchString(line), line)
	assert.True(t, strings.HasSuffix(line, `INFO route solved from="Oak St" km=1.5`+"\n"), line)
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "WARN")
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "WARN shown")
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, nil)).
		With("query", 3).
		WithGroup("path")

	log.Info("done", "hops", 2, slog.Group("dst", "id", 7))

	assert.Contains(t, buf.String(), "INFO done query=3 path.hops=2 path.dst.id=7\n")
}

func TestParseLevel(t *testing.T) {
	l, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	l, err = logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = logging.ParseLevel("loud")
	require.Error(t, err)

	_, err = logging.New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}
