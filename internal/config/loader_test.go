package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFromFile_AppliesDefaults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "life.db")
	path := writeConfig(t, `
jwt:
  secret_key: test-secret
admin:
  password: hunter2
database:
  path: `+dbPath+`
`)

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 80, cfg.Life.DefaultLifeExpectancy)
	assert.Equal(t, 120, cfg.RateLimit.Requests)
	assert.False(t, cfg.Redis.Enabled)

	assert.DirExists(t, filepath.Dir(dbPath))
}

func TestLoadConfigFromFile_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret_key: test-secret
admin:
  password: hunter2
database:
  path: `+filepath.Join(t.TempDir(), "life.db")+`
`)
	t.Setenv("LIFE_SERVER_PORT", "9090")
	t.Setenv("LIFE_LIFE_DEFAULT_LIFE_EXPECTANCY", "85")
	t.Setenv("LIFE_LOG_LEVEL", "debug")

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 85, cfg.Life.DefaultLifeExpectancy)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing jwt secret",
			body:    "admin:\n  password: x\n",
			wantErr: "jwt.secret_key",
		},
		{
			name:    "missing admin password",
			body:    "jwt:\n  secret_key: s\n",
			wantErr: "admin.password",
		},
		{
			name:    "bad port",
			body:    "jwt:\n  secret_key: s\nadmin:\n  password: x\nserver:\n  port: 70000\n",
			wantErr: "invalid server port",
		},
		{
			name:    "unknown driver",
			body:    "jwt:\n  secret_key: s\nadmin:\n  password: x\ndatabase:\n  driver: oracle\n",
			wantErr: "unsupported database driver",
		},
		{
			name:    "postgres without dsn",
			body:    "jwt:\n  secret_key: s\nadmin:\n  password: x\ndatabase:\n  driver: postgres\n",
			wantErr: "database.dsn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfigFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromFile_MissingExplicitFile(t *testing.T) {
	_, err := loadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestServerConfig_Helpers(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080, ReadTimeout: 5}

	assert.Equal(t, "127.0.0.1:8080", s.GetAddress())
	assert.Equal(t, "5s", s.GetReadTimeout().String())
}
