package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nelluk/OntarioParks/internal/infrastructure/config"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// summer cabin trip
		"start": "2026-07-15",
		"end": "2026-07-17",
		"partySize": 4,
		"cookieFile": "tmp/op_cookies.json",
		"autoReserve": true,
		"reserveMode": "all",
		"parks": [
			{"name": "Pinery Provincial Park", "preferredSites": ["472", "Birch Cabin"]},
			{"name": "Killbear Provincial Park"}
		]
	}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "2026-07-15", cfg.Start)
	require.Equal(t, 4, cfg.PartySize)
	require.True(t, cfg.AutoReserve)
	require.Equal(t, "all", cfg.ReserveMode)
	require.Len(t, cfg.Parks, 2)
	require.Equal(t, []string{"472", "Birch Cabin"}, cfg.Parks[0].PreferredSites)
	require.Empty(t, cfg.Parks[1].PreferredSites)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.json5"))
	require.Error(t, err)
}
