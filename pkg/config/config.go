package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // qotd timezone must resolve on hosts without zoneinfo

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Discord  DiscordConfig  `yaml:"discord" json:"discord" jsonschema:"description=Discord connection settings"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=OpenAI-compatible completion API settings"`
	QOTD     QOTDConfig     `yaml:"qotd" json:"qotd" jsonschema:"description=Question of the day scheduler"`
	Market   MarketConfig   `yaml:"market" json:"market" jsonschema:"description=Market data provider"`
	Backup   BackupConfig   `yaml:"backup" json:"backup" jsonschema:"description=Database backup upload to S3"`
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Status HTTP server"`
}

// DiscordConfig holds bot connection settings
type DiscordConfig struct {
	Token        string        `yaml:"token" json:"token" jsonschema:"description=Bot token (can use environment variable)"`
	DevGuildID   string        `yaml:"dev_guild_id" json:"dev_guild_id" jsonschema:"description=Register commands in this guild only (global when empty)"`
	DeveloperIDs []string      `yaml:"developer_ids" json:"developer_ids" jsonschema:"description=User ids treated as admins everywhere"`
	Statuses     []string      `yaml:"statuses" json:"statuses" jsonschema:"description=Rotating presence messages"`
	StatusEvery  time.Duration `yaml:"status_every" json:"status_every" jsonschema:"default=5m,description=Presence rotation interval"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	Path            string `yaml:"path" json:"path" jsonschema:"default=guildbot.db,description=SQLite database file"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=2,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	Reset           bool   `yaml:"reset" json:"reset" jsonschema:"default=false,description=Back up the database file and start with an empty one"`
}

// DSN returns sqlite connection string for the configured path
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?cache=shared&mode=rwc&_txlock=immediate", d.Path)
}

// LLMConfig holds completion API settings shared by all AI commands
type LLMConfig struct {
	Endpoint       string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://openrouter.ai/api/v1,description=OpenAI-compatible API endpoint"`
	APIKey         string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Referer        string        `yaml:"referer" json:"referer" jsonschema:"description=HTTP-Referer header sent to OpenRouter"`
	Title          string        `yaml:"title" json:"title" jsonschema:"default=guildbot,description=X-Title header sent to OpenRouter"`
	DefaultModel   string        `yaml:"default_model" json:"default_model" jsonschema:"default=openai/gpt-5-mini,description=Model for ask when none requested"`
	FactCheckModel string        `yaml:"fact_check_model" json:"fact_check_model" jsonschema:"default=perplexity/sonar,description=Model for fact checks"`
	QOTDModel      string        `yaml:"qotd_model" json:"qotd_model" jsonschema:"default=x-ai/grok-beta,description=Model for question of the day"`
	GrokModel      string        `yaml:"grok_model" json:"grok_model" jsonschema:"default=x-ai/grok-beta,description=Model for grok command"`
	AnalystModel   string        `yaml:"analyst_model" json:"analyst_model" jsonschema:"default=openai/gpt-5-mini,description=Model for stock analysis agent"`
	Temperature    float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.01,minimum=0.01,maximum=1,description=Default temperature for ask"`
	MaxTokens      int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,minimum=1,maximum=500,description=Default max tokens for ask"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
}

// QOTDConfig holds daily poll scheduling
type QOTDConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Run the daily scheduler"`
	Time          string        `yaml:"time" json:"time" jsonschema:"default=16:00,description=Local fire time HH:MM"`
	Timezone      string        `yaml:"timezone" json:"timezone" jsonschema:"default=America/New_York,description=IANA zone of fire time"`
	RetryInterval time.Duration `yaml:"retry_interval" json:"retry_interval" jsonschema:"default=1h,description=Wait after a failed cycle"`
	PollHours     int           `yaml:"poll_hours" json:"poll_hours" jsonschema:"default=24,description=Poll duration in hours"`
}

// TimeOfDay parses Time as hour and minute
func (q QOTDConfig) TimeOfDay() (hour, minute int, err error) {
	t, err := time.Parse("15:04", q.Time)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid qotd.time %q: %w", q.Time, err)
	}
	return t.Hour(), t.Minute(), nil
}

// Location loads the configured zone
func (q QOTDConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid qotd.timezone %q: %w", q.Timezone, err)
	}
	return loc, nil
}

// MarketConfig holds market data settings
type MarketConfig struct {
	Endpoint  string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://query1.finance.yahoo.com,description=Yahoo Finance API base"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; guildbot/1.0),description=User agent for market requests"`
}

// BackupConfig holds S3 upload of database backups
type BackupConfig struct {
	Enabled   bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Upload backups made by reset"`
	Bucket    string `yaml:"bucket" json:"bucket" jsonschema:"description=S3 bucket"`
	Prefix    string `yaml:"prefix" json:"prefix" jsonschema:"default=guildbot/,description=Object key prefix"`
	Region    string `yaml:"region" json:"region" jsonschema:"default=us-east-1,description=S3 region"`
	Endpoint  string `yaml:"endpoint" json:"endpoint" jsonschema:"description=Custom S3 endpoint (minio etc)"`
	AccessKey string `yaml:"access_key" json:"access_key" jsonschema:"description=Static access key (default credential chain when empty)"`
	SecretKey string `yaml:"secret_key" json:"secret_key" jsonschema:"description=Static secret key"`
}

// ServerConfig holds the status server settings
type ServerConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Run status HTTP server"`
	Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=Basic auth password for guild endpoints (user admin)"`
}

// Load reads configuration from a YAML file, empty path gives defaults only
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	SetDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults fills zero values with defaults
func SetDefaults(cfg *Config) {
	if cfg.Discord.StatusEvery == 0 {
		cfg.Discord.StatusEvery = 5 * time.Minute
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "guildbot.db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 4
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.LLM.Endpoint == "" {
		cfg.LLM.Endpoint = "https://openrouter.ai/api/v1"
	}
	if cfg.LLM.Title == "" {
		cfg.LLM.Title = "guildbot"
	}
	if cfg.LLM.DefaultModel == "" {
		cfg.LLM.DefaultModel = "openai/gpt-5-mini"
	}
	if cfg.LLM.FactCheckModel == "" {
		cfg.LLM.FactCheckModel = "perplexity/sonar"
	}
	if cfg.LLM.QOTDModel == "" {
		cfg.LLM.QOTDModel = "x-ai/grok-beta"
	}
	if cfg.LLM.GrokModel == "" {
		cfg.LLM.GrokModel = "x-ai/grok-beta"
	}
	if cfg.LLM.AnalystModel == "" {
		cfg.LLM.AnalystModel = "openai/gpt-5-mini"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.01
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	if cfg.QOTD.Time == "" {
		cfg.QOTD.Time = "16:00"
	}
	if cfg.QOTD.Timezone == "" {
		cfg.QOTD.Timezone = "America/New_York"
	}
	if cfg.QOTD.RetryInterval == 0 {
		cfg.QOTD.RetryInterval = time.Hour
	}
	if cfg.QOTD.PollHours == 0 {
		cfg.QOTD.PollHours = 24
	}

	if cfg.Market.Endpoint == "" {
		cfg.Market.Endpoint = "https://query1.finance.yahoo.com"
	}
	if cfg.Market.Timeout == 0 {
		cfg.Market.Timeout = 10 * time.Second
	}
	if cfg.Market.UserAgent == "" {
		cfg.Market.UserAgent = "Mozilla/5.0 (compatible; guildbot/1.0)"
	}

	if cfg.Backup.Prefix == "" {
		cfg.Backup.Prefix = "guildbot/"
	}
	if cfg.Backup.Region == "" {
		cfg.Backup.Region = "us-east-1"
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Temperature < 0.01 || cfg.LLM.Temperature > 1 {
		return fmt.Errorf("llm.temperature must be between 0.01 and 1")
	}
	if cfg.LLM.MaxTokens < 1 || cfg.LLM.MaxTokens > 500 {
		return fmt.Errorf("llm.max_tokens must be between 1 and 500")
	}

	if _, _, err := cfg.QOTD.TimeOfDay(); err != nil {
		return err
	}
	if _, err := cfg.QOTD.Location(); err != nil {
		return err
	}
	if cfg.QOTD.RetryInterval < time.Second {
		return fmt.Errorf("qotd.retry_interval must be at least 1 second")
	}
	if cfg.QOTD.PollHours < 1 || cfg.QOTD.PollHours > 768 {
		return fmt.Errorf("qotd.poll_hours must be between 1 and 768")
	}

	if cfg.Backup.Enabled && cfg.Backup.Bucket == "" {
		return fmt.Errorf("backup.bucket is required when backup is enabled")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	return nil
}
