package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidConfig(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	validConfig := `server:
  port: 9184
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 120
  idle_timeout: 60
log:
  level: debug
exporter:
  log_dir: /nexus-data/log
  live_log_name: request.log
  archive_prefix: request-
  default_window: 24h
  flag_file: /opt/scripts/flags.txt
  scan_timeout: 60
artifact:
  root_dir: ./data
  file_name: nexus_metrics.prom
  refresh_interval: 300
`

	_, err = tmpfile.WriteString(validConfig)
	require.NoError(t, err)
	tmpfile.Close()

	cfg, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, 9184, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/nexus-data/log", cfg.Exporter.LogDir)
	assert.Equal(t, "request.log", cfg.Exporter.LiveLogName)
	assert.Equal(t, "request-", cfg.Exporter.ArchivePrefix)
	assert.Equal(t, "24h", cfg.Exporter.DefaultWindow)
	assert.Equal(t, "/opt/scripts/flags.txt", cfg.Exporter.FlagFile)
	assert.Equal(t, 60, cfg.Exporter.ScanTimeout)
	assert.Equal(t, "./data", cfg.Artifact.RootDir)
	assert.Equal(t, "nexus_metrics.prom", cfg.Artifact.FileName)
	assert.Equal(t, 300, cfg.Artifact.RefreshInterval)
}

func TestLoadConfig_FlagFileOptional(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	config := `server:
  port: 9184
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 120
  idle_timeout: 60
log:
  level: info
exporter:
  log_dir: /nexus-data/log
  live_log_name: request.log
  archive_prefix: request-
  default_window: 24h
  scan_timeout: 60
artifact:
  root_dir: ./data
  file_name: nexus_metrics.prom
  refresh_interval: 0
`

	_, err = tmpfile.WriteString(config)
	require.NoError(t, err)
	tmpfile.Close()

	cfg, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)
	assert.Empty(t, cfg.Exporter.FlagFile)
	assert.Equal(t, 0, cfg.Artifact.RefreshInterval)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	invalidConfig := `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 120
  idle_timeout: 60
log:
  level: info
exporter:
  live_log_name: request.log
  archive_prefix: request-
  default_window: 24h
  scan_timeout: 60
artifact:
  root_dir: ./data
  file_name: nexus_metrics.prom
`

	_, err = tmpfile.WriteString(invalidConfig)
	require.NoError(t, err)
	tmpfile.Close()

	_, err = LoadConfig(tmpfile.Name())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "exporter.log_dir")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
