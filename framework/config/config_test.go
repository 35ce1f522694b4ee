package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-container/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// clearEnv blanks the given keys for the duration of the test; env() treats
// empty values as unset.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

// unsetEnv removes keys so godotenv can populate them, and restores the
// previous state once the test ends.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		prev, had := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
				return
			}
			_ = os.Unsetenv(k)
		})
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "APP_NAME", "APP_ENV", "APP_DEBUG", "APP_URL", "APP_PORT", "LOG_LEVEL", "LOG_FORMAT")
	cfg := config.Load("testdata/missing.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoContainer"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.URL", cfg.App.URL, "http://localhost"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.True(t, cfg.App.Debug)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")

	cfg := config.Load("testdata/missing.env")

	assert.Equal(t, "MyApp", cfg.App.Name)
	assert.Equal(t, "testing", cfg.App.Env)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ProductionForcesJSONLogs(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "console")

	cfg := config.Load("testdata/missing.env")
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	unsetEnv(t, "APP_NAME", "LOG_LEVEL")

	cfg := config.Load("testdata/app.env")

	assert.Equal(t, "FromFile", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	t.Setenv("APP_NAME", "FromEnv")
	unsetEnv(t, "LOG_LEVEL")

	cfg := config.Load("testdata/app.env")
	assert.Equal(t, "FromEnv", cfg.App.Name)
}

func TestLoad_AppDebugFalse(t *testing.T) {
	t.Setenv("APP_DEBUG", "false")
	cfg := config.Load("testdata/missing.env")
	assert.False(t, cfg.App.Debug)
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "hello")
	assert.Equal(t, "hello", config.Get("CUSTOM_KEY", "default"))

	clearEnv(t, "MISSING_KEY")
	assert.Equal(t, "fallback", config.Get("MISSING_KEY", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, config.GetInt("SOME_INT", 0))

	t.Setenv("SOME_INT", "notanint")
	assert.Equal(t, 99, config.GetInt("SOME_INT", 99))
}

func TestGetBool(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		t.Setenv("BOOL_KEY", val)
		assert.True(t, config.GetBool("BOOL_KEY", false), "expected true for %q", val)
	}

	t.Setenv("BOOL_KEY", "false")
	assert.False(t, config.GetBool("BOOL_KEY", true))

	t.Setenv("BOOL_KEY", "notabool")
	assert.True(t, config.GetBool("BOOL_KEY", true))
}
