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
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	err := os.WriteFile(configPath, []byte(content), 0o644)
	require.NoError(t, err)
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

llm:
  endpoint: http://localhost:11434/v1
  api_key: test-key
  model: gpt-4o-mini
  temperature: 0.8
  history_limit: 10

admin:
  password: secret
  jwt_secret: signing-key
  token_ttl: 2h
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.Endpoint)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
		assert.InEpsilon(t, 0.8, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 10, cfg.LLM.HistoryLimit)
		assert.Equal(t, "secret", cfg.Admin.Password)
		assert.Equal(t, 2*time.Hour, cfg.Admin.TokenTTL)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
llm:
  model: gpt-4o-mini
admin:
  password: secret
  jwt_secret: signing-key
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:studentscope.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.InEpsilon(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.Equal(t, 20, cfg.LLM.HistoryLimit)
		assert.Equal(t, 1500, cfg.LLM.Report.MaxTokens)
		assert.InEpsilon(t, 0.5, cfg.LLM.Report.Temperature, 0.001)
		assert.Equal(t, "whisper-1", cfg.LLM.Transcription.Model)
		assert.Equal(t, "en", cfg.LLM.Transcription.Language)
		assert.Equal(t, 12*time.Hour, cfg.Admin.TokenTTL)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_API_KEY", "key-from-env")
		configContent := `
llm:
  model: gpt-4o-mini
  api_key: ${TEST_API_KEY}
admin:
  password: secret
  jwt_secret: signing-key
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "key-from-env", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "llm: [not a map"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "missing model",
			content: `
admin:
  password: secret
  jwt_secret: signing-key
`,
			errMsg: "llm.model is required",
		},
		{
			name: "missing admin password",
			content: `
llm:
  model: gpt-4o-mini
admin:
  jwt_secret: signing-key
`,
			errMsg: "admin.password is required",
		},
		{
			name: "missing jwt secret",
			content: `
llm:
  model: gpt-4o-mini
admin:
  password: secret
`,
			errMsg: "admin.jwt_secret is required",
		},
		{
			name: "temperature out of range",
			content: `
llm:
  model: gpt-4o-mini
  temperature: 3.5
admin:
  password: secret
  jwt_secret: signing-key
`,
			errMsg: "llm.temperature must be between 0 and 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	configContent := `
server:
  listen: ":3000"
llm:
  model: gpt-4o-mini
admin:
  password: secret
  jwt_secret: signing-key
`
	cfg, err := Load(writeConfig(t, configContent))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":3000", listen)
	assert.Equal(t, 30*time.Second, timeout)

	assert.Equal(t, "gpt-4o-mini", cfg.GetLLMConfig().Model)
	assert.Equal(t, "secret", cfg.GetAdminConfig().Password)
}
