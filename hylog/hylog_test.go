package hylog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hotyard/hylog"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleSinkNeedsNoFile(t *testing.T) {
	log, closer, err := hylog.New(hylog.WithSink(hylog.SinkConsole))
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	log.Info().Msg("hello")
}

func TestNew_FileSinkWritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	log, closer, err := hylog.New(hylog.WithSink(hylog.SinkFile), hylog.WithFilePath(path))
	require.NoError(t, err)
	log.Info().Msg("seeded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "seeded")
}

func TestNew_UnknownSinkRejected(t *testing.T) {
	_, _, err := hylog.New(hylog.WithSink(hylog.Sink(99)))
	require.ErrorIs(t, err, hylog.ErrUnknownSink)
}

func TestNew_VerboseLowersLevel(t *testing.T) {
	log, closer, err := hylog.New(hylog.WithSink(hylog.SinkConsole), hylog.WithVerbose(true))
	require.NoError(t, err)
	defer closer.Close()
	require.Equal(t, "debug", log.GetLevel().String())
}
