package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/immersivevr/immersive/pkg/cli/config"
	"github.com/immersivevr/immersive/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestDefaultCatalog(t *testing.T) {
	records := config.DefaultCatalog()
	gt.Array(t, records).Length(4).Required()

	titles := []string{"Vintage Camera", "Space Explorer", "VR Headset Pro", "Museum Gallery"}
	colors := []string{"#8B5CF6", "#06B6D4", "#6366F1", "#F59E0B"}
	categories := []string{"Electronics", "Vehicle", "Technology", "Architecture"}
	for i, r := range records {
		gt.Value(t, r.ID).Equal(int64(0))
		gt.Value(t, r.Title).Equal(titles[i])
		gt.Value(t, r.Color).Equal(colors[i])
		gt.Value(t, r.Category).Equal(categories[i])
		gt.B(t, r.IsActive).True()
		gt.String(t, r.ImageURL).Contains("images.unsplash.com")
		gt.Value(t, r.Description).NotEqual("")
	}

	gt.Value(t, records[3].Kind).Equal(types.ModelKindTour)
	for _, r := range records[:3] {
		gt.Value(t, r.Kind).Equal(types.ModelKindModel)
	}
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantErr   bool
	}{
		{
			name: "active defaults to true",
			content: `
[[model]]
title = "Drone"
type = "model"
color = "#8b5cf6"
`,
			wantCount: 1,
		},
		{
			name:      "empty document",
			content:   "",
			wantCount: 0,
		},
		{
			name: "unknown type",
			content: `
[[model]]
title = "Hologram"
type = "hologram"
`,
			wantErr: true,
		},
		{
			name: "missing title",
			content: `
[[model]]
type = "tour"
`,
			wantErr: true,
		},
		{
			name:    "broken TOML",
			content: `[[model]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := config.ParseCatalog([]byte(tt.content))
			if tt.wantErr {
				gt.Error(t, err).Is(config.ErrInvalidCatalog)
				return
			}
			gt.NoError(t, err).Required()
			gt.Array(t, records).Length(tt.wantCount)
			for _, r := range records {
				gt.B(t, r.IsActive).True()
			}
		})
	}
}

func TestParseCatalog_InactiveEntry(t *testing.T) {
	records, err := config.ParseCatalog([]byte(`
[[model]]
title = "Retired Tour"
type = "tour"
active = false
`))
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(1).Required()
	gt.B(t, records[0].IsActive).False()
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(`
[[model]]
title = "Rocket"
type = "model"

[[model]]
title = "Castle"
type = "tour"
`), 0600)).Required()

	records, err := config.LoadCatalog(path)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(2)

	_, err = config.LoadCatalog(filepath.Join(dir, "missing.toml"))
	gt.Value(t, err).NotNil()
}

func TestCatalog_Configure(t *testing.T) {
	var cfg config.Catalog
	repo, err := cfg.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer func() { gt.NoError(t, repo.Close()) }()

	records, err := repo.Catalog().List(context.Background())
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(4)
	gt.Value(t, records[0].ID).Equal(int64(1))
	gt.Value(t, records[3].ID).Equal(int64(4))
}
