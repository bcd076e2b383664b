package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FINANCE_LEDGER_FILE.
const EnvPrefix = "FINANCE"

// Supported ledger backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Ledger file names used when ledger.file is not set.
const (
	DefaultCSVFile    = "expenses.csv"
	DefaultSQLiteFile = "expenses.db"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ledger struct {
		File          string `mapstructure:"file" yaml:"file"`
		Backend       string `mapstructure:"backend" yaml:"backend"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
	} `mapstructure:"ledger" yaml:"ledger"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Display struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"display" yaml:"display"`

	Categories struct {
		File     string `mapstructure:"file" yaml:"file"`
		Fallback string `mapstructure:"fallback" yaml:"fallback"`
	} `mapstructure:"categories" yaml:"categories"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig loads configuration from defaults, the first config.yaml
// found in the standard locations, and FINANCE_* environment variables.
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load is InitializeConfig with an explicit config file. An empty path
// searches $HOME/.finance-tracker, ./.finance-tracker and the working directory.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.finance-tracker")
		v.AddConfigPath(".finance-tracker")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyLedgerFileDefault(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	applyLedgerFileDefault(&config)
	return &config
}

// applyLedgerFileDefault picks the ledger file name for the configured
// backend when none was given.
func applyLedgerFileDefault(config *Config) {
	if config.Ledger.File != "" {
		return
	}
	if config.Ledger.Backend == BackendSQLite {
		config.Ledger.File = DefaultSQLiteFile
	} else {
		config.Ledger.File = DefaultCSVFile
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ledger.file", "")
	v.SetDefault("ledger.backend", BackendCSV)
	v.SetDefault("ledger.backup_enabled", false)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("display.currency_symbol", "$")

	v.SetDefault("categories.file", "categories.yaml")
	v.SetDefault("categories.fallback", "Other")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.max_retries", 3)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Ledger.File) == "" {
		return fmt.Errorf("ledger.file must not be empty")
	}

	if config.Ledger.Backend != BackendCSV && config.Ledger.Backend != BackendSQLite {
		return fmt.Errorf("invalid ledger backend: %s (must be '%s' or '%s')",
			config.Ledger.Backend, BackendCSV, BackendSQLite)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}
	if d := config.CSV.Delimiter; d == "\"" || d == "\n" || d == "\r" {
		return fmt.Errorf("CSV delimiter cannot be %q", d)
	}

	if strings.TrimSpace(config.Categories.Fallback) == "" {
		return fmt.Errorf("categories.fallback must not be empty")
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	if config.AI.MaxRetries < 0 || config.AI.MaxRetries > 10 {
		return fmt.Errorf("ai.max_retries must be between 0 and 10, got: %d", config.AI.MaxRetries)
	}

	return nil
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
