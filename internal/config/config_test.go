package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, "studentdesk-secret", cfg.Session.Secret)
	assert.Equal(t, "24h", cfg.Session.TTL)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, "public/uploads", cfg.Storage.UploadsDir)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Empty(t, cfg.Logging.FilePath)
	assert.Equal(t, 100, cfg.Logging.MaxSizeMB)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "8080"
database:
  driver: memory
  seed: true
admin:
  username: root
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_PASS", "hunter2")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port, "env wins over file")
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "hunter2", cfg.Admin.Password)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "mongo"}},
		{"bad ttl", map[string]string{"SESSION_TTL": "forever"}},
		{"empty secret", map[string]string{"SESSION_SECRET": ""}},
		{"empty uploads dir", map[string]string{"UPLOADS_DIR": ""}},
		{"bad integer", map[string]string{"DB_MAX_IDLE_CONNS": "many"}},
		{"bad boolean", map[string]string{"DB_SEED": "sometimes"}},
		{"unknown storage driver", map[string]string{"STORAGE_DRIVER": "ftp"}},
		{"minio without endpoint", map[string]string{"STORAGE_DRIVER": "minio"}},
		{"minio without public url", map[string]string{"STORAGE_DRIVER": "minio", "MINIO_ENDPOINT": "localhost:9000"}},
		{"relative metrics path", map[string]string{"METRICS_PATH": "metrics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_DriverIsNormalized(t *testing.T) {
	t.Setenv("DB_DRIVER", "  Memory ")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoadConfig_MinioFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MINIO")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_PUBLIC_URL", "http://localhost:9000/studentdesk")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, StorageMinio, cfg.Storage.Driver)
	assert.Equal(t, "studentdesk", cfg.Storage.Minio.Bucket)
	assert.True(t, cfg.Storage.Minio.UseSSL)
}
