package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/immersivevr/immersive/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestEnvFileFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "absent", args: []string{"immersive", "serve"}, want: ".env"},
		{name: "separate value", args: []string{"immersive", "--env-file", "prod.env", "serve"}, want: "prod.env"},
		{name: "inline value", args: []string{"immersive", "--env-file=dev.env", "serve"}, want: "dev.env"},
		{name: "after terminator", args: []string{"immersive", "models", "--", "--env-file=x"}, want: ".env"},
		{name: "missing value", args: []string{"immersive", "--env-file"}, want: ".env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, config.EnvFileFromArgs(tt.args, config.DefaultEnvFile)).Equal(tt.want)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		gt.NoError(t, config.LoadEnvFile(filepath.Join(t.TempDir(), "none.env")))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(path, []byte("IMMERSIVE_TEST_A=from-file\nIMMERSIVE_TEST_B=from-file\n"), 0600)).Required()

		t.Setenv("IMMERSIVE_TEST_A", "from-env")
		t.Setenv("IMMERSIVE_TEST_B", "")
		gt.NoError(t, os.Unsetenv("IMMERSIVE_TEST_B")).Required()

		gt.NoError(t, config.LoadEnvFile(path)).Required()
		gt.Value(t, os.Getenv("IMMERSIVE_TEST_A")).Equal("from-env")
		gt.Value(t, os.Getenv("IMMERSIVE_TEST_B")).Equal("from-file")
	})
}

func TestSentry_DisabledWithoutDSN(t *testing.T) {
	cfg := config.NewSentryForTest("", "test")
	gt.B(t, cfg.IsEnabled()).False()

	closer, err := cfg.Configure("v0.0.0")
	gt.NoError(t, err).Required()
	closer()
}
