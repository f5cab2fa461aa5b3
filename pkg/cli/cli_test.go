package cli_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/immersivevr/immersive/pkg/cli"
	"github.com/immersivevr/immersive/pkg/cli/config"
	httpctrl "github.com/immersivevr/immersive/pkg/controller/http"
	"github.com/immersivevr/immersive/pkg/repository/memory"
	"github.com/immersivevr/immersive/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

// runCLI runs the app with logs sent to a temp file
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "immersive.log")
	base := []string{"immersive", "--env-file", "", "--log-output", logFile}
	return cli.Run(context.Background(), append(base, args...), "test")
}

// startAPI serves the default catalog over a test server
func startAPI(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	_, err := uc.Catalog.Seed(ctx, config.DefaultCatalog())
	gt.NoError(t, err).Required()

	handler, err := httpctrl.New(uc.Catalog)
	gt.NoError(t, err).Required()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRun_ValidateCommand_DefaultCatalog(t *testing.T) {
	gt.NoError(t, runCLI(t, "validate"))
}

func TestRun_ValidateCommand_ValidFile(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[model]]
title = "Planet Rover"
type = "model"
category = "Vehicle"
color = "#06B6D4"

[[model]]
title = "Old Library"
type = "tour"
active = false
`)
	gt.NoError(t, runCLI(t, "validate", "--catalog-file", path))
}

func TestRun_ValidateCommand_InvalidFile(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[model]]
title = "Hologram"
type = "animation"
`)
	gt.Value(t, runCLI(t, "validate", "--catalog-file", path)).NotNil()
}

func TestRun_ValidateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.toml")
	gt.Value(t, runCLI(t, "validate", "--catalog-file", path)).NotNil()
}

func TestRun_ModelsCommand(t *testing.T) {
	url := startAPI(t)

	t.Run("list", func(t *testing.T) {
		gt.NoError(t, runCLI(t, "models", "--api-url", url, "list"))
	})

	t.Run("get", func(t *testing.T) {
		gt.NoError(t, runCLI(t, "models", "--api-url", url, "get", "2"))
	})

	t.Run("get unknown id", func(t *testing.T) {
		gt.Value(t, runCLI(t, "models", "--api-url", url, "get", "99")).NotNil()
	})

	t.Run("get without id", func(t *testing.T) {
		gt.Value(t, runCLI(t, "models", "--api-url", url, "get")).NotNil()
	})

	t.Run("get non-numeric id", func(t *testing.T) {
		gt.Value(t, runCLI(t, "models", "--api-url", url, "get", "abc")).NotNil()
	})
}

func TestRun_ModelsCommand_InvalidURL(t *testing.T) {
	gt.Value(t, runCLI(t, "models", "--api-url", "ftp://example.com", "list")).NotNil()
}

func TestRun_ViewCommand_Headless(t *testing.T) {
	url := startAPI(t)
	gt.NoError(t, runCLI(t, "view",
		"--api-url", url,
		"--headless",
		"--hz", "240",
		"--frames", "3",
		"--width", "48",
		"--height", "32",
	))
}

func TestRun_ViewCommand_RejectsEmptySurface(t *testing.T) {
	gt.Value(t, runCLI(t, "view", "--headless", "--frames", "1", "--width", "0")).NotNil()
}

func TestRun_EnvFileSetsFlags(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[model]]
title = "Hologram"
type = "animation"
`)
	envFile := writeFile(t, "test.env", "IMMERSIVE_CATALOG_FILE="+path+"\n")
	t.Setenv("IMMERSIVE_CATALOG_FILE", "")
	os.Unsetenv("IMMERSIVE_CATALOG_FILE")

	logFile := filepath.Join(t.TempDir(), "immersive.log")
	err := cli.Run(context.Background(), []string{"immersive", "--env-file", envFile, "--log-output", logFile, "validate"}, "test")
	gt.Value(t, err).NotNil()
}
