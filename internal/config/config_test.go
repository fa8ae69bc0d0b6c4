package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Directory: filepath.Join("catalog", "levels"),
		},
		Storage: StorageConfig{
			Backend:   "file",
			Directory: filepath.Join("data", "progress"),
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "vocamind",
			Username: "user",
		},
		Dictionary: DictionaryConfig{
			BaseURL:        "https://api.dictionaryapi.dev",
			CacheDirectory: filepath.Join("data", "dictionary"),
			RetryAttempts:  2,
		},
		Mission: MissionConfig{
			TargetQuestions: 5,
			XPPerQuestion:   10,
		},
		Reports: ReportsConfig{
			OutputDirectory: filepath.Join("data", "reports"),
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `catalog:
  directory: custom/levels
storage:
  backend: mysql
mission:
  target_questions: 8
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Catalog.Directory = "custom/levels"
				cfg.Storage.Backend = "mysql"
				cfg.Mission.TargetQuestions = 8
				return cfg
			},
		},
		{
			name:          "missing config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "invalid YAML format",
			configContent: `catalog:
  directory: custom/levels
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown storage backend fails validation",
			configContent: `storage:
  backend: redis
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"backend",
			},
		},
		{
			name: "zero target questions fails validation",
			configContent: `mission:
  target_questions: 0
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			configPath := ""
			if tt.configContent != "" {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				// Search the temp directory so a developer's local config
				// never leaks into the test.
				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(tempDir))
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)

			got, err := loader.Load()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}
