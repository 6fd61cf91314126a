// Package config loads run settings from defaults, a YAML file, a .env file
// and ATTENDANCE_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable. Names follow the struct
// path: ATTENDANCE_INPUT_DIR, ATTENDANCE_LOGGING_FILE_PATH, ...
const EnvPrefix = "ATTENDANCE"

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates the per-subject workbooks.
type InputConfig struct {
	Dir     string `yaml:"dir" validate:"required"`
	Pattern string `yaml:"pattern" validate:"required"`
}

// OutputConfig names the generated report.
type OutputConfig struct {
	File  string `yaml:"file" validate:"required"`
	Sheet string `yaml:"sheet" validate:"required,max=31"`
}

// ReportConfig holds the heading text printed above the table.
type ReportConfig struct {
	Department string `yaml:"department"`
	Session    string `yaml:"session"`
	Title      string `yaml:"title"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" validate:"oneof=json text"`
	Output   string `yaml:"output" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" split_words:"true" validate:"required_unless=Output console"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     ".",
			Pattern: "*.xlsx",
		},
		Output: OutputConfig{
			File:  "AttendanceReport.xlsx",
			Sheet: "Summary",
		},
		Report: ReportConfig{
			Department: "DEPARTMENT OF COMPUTER ENGINEERING",
			Session:    "SESSION : JULY-DEC 2024; Semester 'A'",
			Title:      "BTech. IYEAR ATTENDANCE SHEET",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/attendance.log",
		},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path skips the file. A .env file in the working directory is loaded when
// present; variables already set in the environment are not overridden.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML settings onto cfg. Keys missing from the file
// keep their current values.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Validate checks the struct tags on every section.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
