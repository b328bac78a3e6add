package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	err := os.WriteFile(tempFilePath, []byte(content), 0644)
	require.NoError(t, err)
	return tempFilePath
}

// mockConfigPaths points both config layers at the given files and restores
// the originals when the test ends.
func mockConfigPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t,
		filepath.Join(tempDir, "non-existent-user-config.yaml"),
		filepath.Join(tempDir, "non-existent-project-config.yaml"),
	)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, DefaultPollInterval, loadedConfig.UI.PollInterval)
	assert.Equal(t, DefaultSeparatorRows, loadedConfig.UI.Separators())
	assert.Empty(t, loadedConfig.Search.APIKey)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, userConfigDir)
	userPath := createTempConfigFile(t, userDir, `
search:
  apiKey: user-key
  cx: user-cx
  timeout: 5s
ui:
  separatorRows: 0
logging:
  level: debug
`)
	mockConfigPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "user-key", loadedConfig.Search.APIKey)
	assert.Equal(t, "user-cx", loadedConfig.Search.CX)
	assert.Equal(t, 5*time.Second, loadedConfig.Search.Timeout)
	assert.Equal(t, 0, loadedConfig.UI.Separators(), "explicit zero separator rows must survive the merge")
	assert.Equal(t, "debug", loadedConfig.Logging.Level)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultEndpoint, loadedConfig.Search.Endpoint)
	assert.Equal(t, DefaultPollInterval, loadedConfig.UI.PollInterval)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	userPath := createTempConfigFile(t, filepath.Join(tempDir, "user"), `
search:
  apiKey: user-key
  cx: user-cx
`)
	projectPath := createTempConfigFile(t, filepath.Join(tempDir, "project"), `
search:
  cx: project-cx
  safe: true
ui:
  pollInterval: 100ms
update:
  repository: someone/fork
`)
	mockConfigPaths(t, userPath, projectPath)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "user-key", loadedConfig.Search.APIKey)
	assert.Equal(t, "project-cx", loadedConfig.Search.CX)
	assert.True(t, loadedConfig.Search.Safe)
	assert.Equal(t, 100*time.Millisecond, loadedConfig.UI.PollInterval)
	assert.Equal(t, "someone/fork", loadedConfig.Update.Repository)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	userPath := createTempConfigFile(t, tempDir, "search: [not: a map")
	mockConfigPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestGetUserConfigDir(t *testing.T) {
	originalOsUserHomeDir := osUserHomeDir
	defer func() { osUserHomeDir = originalOsUserHomeDir }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "termsearch"), dir)
}

func TestValidate(t *testing.T) {
	valid := GetDefaultConfig()
	valid.Search.APIKey = "key"
	valid.Search.CX = "cx"

	negative := -1

	tests := []struct {
		name    string
		mutate  func(c *TermsearchConfig)
		wantErr error
		errText string
	}{
		{name: "valid", mutate: func(c *TermsearchConfig) {}},
		{name: "missing api key", mutate: func(c *TermsearchConfig) { c.Search.APIKey = "" }, wantErr: ErrMissingAPIKey},
		{name: "missing cx", mutate: func(c *TermsearchConfig) { c.Search.CX = "" }, wantErr: ErrMissingCX},
		{name: "zero poll interval", mutate: func(c *TermsearchConfig) { c.UI.PollInterval = 0 }, errText: "poll interval"},
		{name: "negative separators", mutate: func(c *TermsearchConfig) { c.UI.SeparatorRows = &negative }, errText: "separator rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
