package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:studentscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for interview and report generation"`

	Admin AdminConfig `yaml:"admin" json:"admin" jsonschema:"description=Admin access configuration"`
}

// ReportConfig holds report-card extraction settings
type ReportConfig struct {
	Temperature float64 `yaml:"temperature" json:"temperature" jsonschema:"default=0.5,description=Temperature for report extraction"`
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1500,description=Maximum tokens in report response"`
}

// TranscriptionConfig holds speech-to-text settings
type TranscriptionConfig struct {
	Model    string `yaml:"model" json:"model" jsonschema:"default=whisper-1,description=Transcription model name"`
	Language string `yaml:"language" json:"language" jsonschema:"default=en,description=Expected audio language"`
}

// LLMConfig holds LLM configuration for interview turns and report extraction
type LLMConfig struct {
	Endpoint      string              `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey        string              `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model         string              `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature   float64             `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for interview responses"`
	MaxTokens     int                 `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in interview response"`
	Timeout       time.Duration       `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	HistoryLimit  int                 `yaml:"history_limit" json:"history_limit" jsonschema:"default=20,description=Number of recent messages sent as context"`
	Report        ReportConfig        `yaml:"report" json:"report" jsonschema:"description=Report-card extraction settings"`
	Transcription TranscriptionConfig `yaml:"transcription" json:"transcription" jsonschema:"description=Speech-to-text settings"`
}

// AdminConfig holds admin authentication settings
type AdminConfig struct {
	Password  string        `yaml:"password" json:"password" jsonschema:"description=Admin password (can use environment variable)"`
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret" jsonschema:"description=Secret for signing admin tokens"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"default=12h,description=Admin token lifetime"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with documented defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:studentscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.LLM.HistoryLimit == 0 {
		c.LLM.HistoryLimit = 20
	}
	if c.LLM.Report.Temperature == 0 {
		c.LLM.Report.Temperature = 0.5
	}
	if c.LLM.Report.MaxTokens == 0 {
		c.LLM.Report.MaxTokens = 1500
	}
	if c.LLM.Transcription.Model == "" {
		c.LLM.Transcription.Model = "whisper-1"
	}
	if c.LLM.Transcription.Language == "" {
		c.LLM.Transcription.Language = "en"
	}

	if c.Admin.TokenTTL == 0 {
		c.Admin.TokenTTL = 12 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.HistoryLimit < 1 {
		return fmt.Errorf("llm.history_limit must be at least 1")
	}

	if cfg.Admin.Password == "" {
		return fmt.Errorf("admin.password is required")
	}
	if cfg.Admin.JWTSecret == "" {
		return fmt.Errorf("admin.jwt_secret is required")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetAdminConfig returns admin access configuration
func (c *Config) GetAdminConfig() AdminConfig {
	return c.Admin
}
