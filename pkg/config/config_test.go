package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DIRECTORY_SERVICE_KEY", "service-key")
	t.Setenv("SETUP_KEY", "setup-key")
	t.Setenv("SETUP_ADMIN_PASSWORD", "admin-pass")

	cfg := Config{}
	require.NoError(t, cfg.Load())

	assert.Equal(t, "540", cfg.Setup.AdminMemberID)
	assert.Equal(t, "Admin", cfg.Setup.AdminDefaultName)
	assert.Equal(t, 0, cfg.Setup.RateLimit)
	assert.Equal(t, 1000, cfg.Directory.PageSize)
	assert.Equal(t, 10, cfg.Directory.MaxPages)
	assert.Equal(t, 30*time.Second, cfg.Directory.Timeout)
	assert.Equal(t, "/functions/v1", cfg.FunctionsPrefix)
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Setenv("DIRECTORY_SERVICE_KEY", "")
	t.Setenv("SETUP_KEY", "")
	t.Setenv("SETUP_ADMIN_PASSWORD", "")

	cfg := Config{}
	err := cfg.Load()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"DIRECTORY_SERVICE_KEY", "SETUP_KEY", "SETUP_ADMIN_PASSWORD"}, fields)
}

func TestDatabaseURL(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, Database: "members", User: "u", Password: "p", Schema: "portal"}
	assert.Equal(t, "postgres://u:p@db:5433/members?sslmode=disable&search_path=portal,public", d.ToDatabaseURL())
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogConfig{Level: "debug"}.level().String())
	assert.Equal(t, "WARN", LogConfig{Level: "WARNING"}.level().String())
	assert.Equal(t, "INFO", LogConfig{Level: "nonsense"}.level().String())
}
