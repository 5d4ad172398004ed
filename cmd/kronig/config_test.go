package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kronig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadConfig_Partial verifies that only the keys present in the file are
// populated; absent keys stay nil.
func TestLoadConfig_Partial(t *testing.T) {
	path := writeConfig(t, "bands: 5\nstrength: 2.5\n")

	fc, err := loadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, fc.Bands)
	assert.Equal(t, 5, *fc.Bands)
	require.NotNil(t, fc.Strength)
	assert.Equal(t, 2.5, *fc.Strength)
	assert.Nil(t, fc.Spacing, "absent keys must stay nil")
	assert.Nil(t, fc.Title)
}

// TestLoadConfig_Errors verifies read and parse failures are reported.
func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing file must error")

	path := writeConfig(t, "bands: [not, an, int]\n")
	_, err = loadConfig(path)
	assert.Error(t, err, "malformed YAML must error")
}

// TestApply_FlagPrecedence verifies the merge order: an explicitly set flag
// beats the config file, which beats the built-in default.
func TestApply_FlagPrecedence(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("bands", "7")) // user-set flag

	bands, samples := 7, 100
	spacing, strength := 1.0, 4.0
	title, out := "", "bands.png"
	parallel := false

	fc := fileConfig{
		Bands:   intPtr(2),
		Samples: intPtr(50),
		Out:     strPtr("custom.png"),
	}
	fc.apply(cmd, &bands, &spacing, &strength, &samples, &title, &out, &parallel)

	assert.Equal(t, 7, bands, "explicit flag must win over the file")
	assert.Equal(t, 50, samples, "file must win over the default")
	assert.Equal(t, "custom.png", out)
	assert.Equal(t, 1.0, spacing, "untouched values keep their defaults")
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
