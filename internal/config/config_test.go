package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("parses a full config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		data := `
app:
  name: village
  env: dev
server:
  host: 127.0.0.1
  port: 5080
database:
  driver: mysql
  host: localhost
  port: 3306
redis:
  enabled: true
  ttl: 120
log:
  level: debug
  format: json
page:
  default_context: home
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "village", cfg.App.Name)
		assert.Equal(t, 5080, cfg.Server.Port)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, 120, cfg.Redis.TTL)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "home", cfg.Page.DefaultContext)
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("::: not yaml"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
