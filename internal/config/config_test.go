package conf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, firstRun, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, firstRun)
	assert.False(t, cfg.Translate.Enabled)
	assert.Equal(t, "pl", cfg.Translate.TargetLang)
	assert.Equal(t, 8, cfg.Translate.Workers)
	assert.Equal(t, 240.0, cfg.Filters.MinPrice)
	assert.Equal(t, 0.0, cfg.Filters.MaxPrice, "0 = brak górnego limitu")
	assert.Equal(t, 5, cfg.Filters.MinQty)
	assert.Equal(t, 1000, cfg.CheckpointRows)
	assert.Contains(t, cfg.Suppliers, "b2bsport")
	assert.Contains(t, cfg.Suppliers, "kinghoff")

	// drugi odczyt: plik już istnieje
	cfg2, firstRun, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, firstRun)
	assert.Equal(t, cfg.Filters, cfg2.Filters)
}

func TestUnmarshalSupplier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, _, err := LoadOrCreate(path)
	require.NoError(t, err)

	var b2b B2BSportDefaults
	require.NoError(t, cfg.UnmarshalSupplier("b2bsport", &b2b))
	assert.NotEmpty(t, b2b.Feed)
	assert.NotEmpty(t, b2b.LightFeed)

	assert.Error(t, cfg.UnmarshalSupplier("nieznany", &b2b))
}

func TestPartialsDir(t *testing.T) {
	cfg := &Config{OutDir: "/tmp/export"}
	assert.Equal(t, filepath.Join("/tmp/export", "partials"), cfg.PartialsDir())
}
