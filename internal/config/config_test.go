package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_URL", "DATA_PATH", "USAGE_TRACKING", "SEED_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.UsageTracking)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("USAGE_TRACKING", "false")
	t.Setenv("SEED_FILE", " roster.yaml ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.UsageTracking)
	assert.Equal(t, "roster.yaml", cfg.SeedFile)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("USAGE_TRACKING", "sometimes")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "USAGE_TRACKING")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7001\n"), 0o600))

	loaded, err := LoadEnvFile(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded)

	// godotenv leaves variables that are already set alone, and t.Setenv
	// registered PORT as empty, so only unset the key for this check
	require.NoError(t, os.Unsetenv("PORT"))
	_, err = LoadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7001", os.Getenv("PORT"))

	loaded, err = LoadEnvFile(filepath.Join(dir, "nope.env"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	roster := `users:
  - id: 10
    name: Priya
    email: priya@example.com
    role: Lead
    schedule:
      monday:
        - start: "09:00"
          end: "17:00"
  - name: Sam
`
	require.NoError(t, os.WriteFile(path, []byte(roster), 0o600))

	users, err := LoadRoster(path)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 10, users[0].ID)
	assert.Equal(t, "Lead", users[0].Role)
	assert.Equal(t, []models.TimeSlot{{Start: "09:00", End: "17:00"}}, users[0].Schedule[models.Monday])
	assert.Equal(t, "Sam", users[1].Name)
}

func TestLoadRoster_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":     "users: []\n",
		"bad email": "users:\n  - name: A\n    email: not-an-email\n",
		"no name":   "users:\n  - email: a@example.com\n",
		"not yaml":  "users: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roster.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := LoadRoster(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
