package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/immersivevr/immersive/pkg/cli/config"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLogger_Configure(t *testing.T) {
	before := logging.Default()
	t.Cleanup(func() { logging.SetDefault(before) })

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "immersive.log")
		cfg := config.NewLoggerForTest("debug", "json", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		logging.Default().Info("hello")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains(`"msg":"hello"`)
	})

	t.Run("unknown level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "console", "stdout")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogLevel)
	})

	t.Run("unknown format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogFormat)
	})
}
