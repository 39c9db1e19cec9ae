package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contenido string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  host: 127.0.0.1\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "api_rest_dbz", cfg.DB.Name)
	assert.Equal(t, "static/uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "api-rest-dbz", cfg.JWT.Issuer)
	assert.Equal(t, 60, cfg.JWT.ExpMin)
	assert.Empty(t, cfg.JWT.Secret)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.Storage.PublicBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  host: 0.0.0.0
  port: 8080
db:
  host: db.interna
  user: api
  pass: secreta
  name: dbz
jwt:
  secret: clave-fija
  exp_min: 15
storage:
  upload_dir: /var/uploads
  public_base_url: https://api.ejemplo.com/
`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "db.interna", cfg.DB.Host)
	assert.Equal(t, "secreta", cfg.DB.Pass)
	assert.Equal(t, "clave-fija", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.ExpMin)
	assert.Equal(t, "/var/uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "https://api.ejemplo.com/", cfg.Storage.PublicBaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe.yaml"))
	assert.Error(t, err)
}
