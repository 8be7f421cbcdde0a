package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("File values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
listen: 127.0.0.1:9000
dsn: root:pw@tcp(localhost:3306)/timbrapp?parseTime=true
signingSecret: s3cret
timezone: Europe/Madrid
employeeSessionTimeout: 4h
adminSessionTimeout: 45m
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
		assert.Equal(t, "Europe/Madrid", cfg.Timezone)
		assert.Equal(t, 4*time.Hour, cfg.EmployeeSessionTimeout)
		assert.Equal(t, 45*time.Minute, cfg.AdminSessionTimeout)
	})

	t.Run("Defaults survive omitted fields", func(t *testing.T) {
		path := writeConfig(t, `
dsn: root:pw@tcp(localhost:3306)/timbrapp?parseTime=true
signingSecret: s3cret
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8090", cfg.Listen)
		assert.Equal(t, "Europe/Rome", cfg.Timezone)
		assert.Equal(t, 8*time.Hour, cfg.EmployeeSessionTimeout)
		assert.Equal(t, time.Hour, cfg.AdminSessionTimeout)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		path := writeConfig(t, `
dsn: root:pw@tcp(localhost:3306)/timbrapp?parseTime=true
signingSecret: s3cret
timezone: Europe/Rome
`)
		t.Setenv("TIMBRAPP_TIMEZONE", "Europe/Berlin")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", cfg.Timezone)

		loc, err := cfg.Location()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", loc.String())
	})

	t.Run("Missing DSN fails", func(t *testing.T) {
		t.Setenv("DSN", "")
		path := writeConfig(t, `signingSecret: s3cret`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Bad timeout string fails", func(t *testing.T) {
		path := writeConfig(t, `
dsn: root:pw@tcp(localhost:3306)/timbrapp?parseTime=true
signingSecret: s3cret
employeeSessionTimeout: otto ore
`)

		_, err := Load(path)
		assert.Error(t, err)
	})
}
