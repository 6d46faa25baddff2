package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Export   ExportConfig   `mapstructure:"export"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents generation defaults and input bounds
type CalendarConfig struct {
	DefaultWeeks int `mapstructure:"default_weeks"`
	MaxWeeks     int `mapstructure:"max_weeks"`
	MinYear      int `mapstructure:"min_year"`
	YearsAhead   int `mapstructure:"years_ahead"` // upper bound is current year + years_ahead
}

// ExportConfig represents file export settings
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Format    string `mapstructure:"format"` // "csv", "xlsx" or "ics"
}

// LogConfig represents logging settings
type LogConfig struct {
	File  string `mapstructure:"file"` // empty means console logging
	Level string `mapstructure:"level"`
}

// Load loads configuration from file, environment and defaults.
// A missing config file is not an error unless configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.week-parity")
		v.AddConfigPath("/etc/week-parity")
	}

	// Read environment variables, e.g. WEEK_PARITY_CALENDAR_DEFAULT_WEEKS
	v.SetEnvPrefix("week_parity")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			DefaultWeeks: 52,
			MaxWeeks:     100,
			MinYear:      2000,
			YearsAhead:   20,
		},
		Export: ExportConfig{
			OutputDir: "output",
			Format:    "csv",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("calendar.default_weeks", d.Calendar.DefaultWeeks)
	v.SetDefault("calendar.max_weeks", d.Calendar.MaxWeeks)
	v.SetDefault("calendar.min_year", d.Calendar.MinYear)
	v.SetDefault("calendar.years_ahead", d.Calendar.YearsAhead)
	v.SetDefault("export.output_dir", d.Export.OutputDir)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Calendar config
	if c.Calendar.DefaultWeeks <= 0 {
		return fmt.Errorf("calendar.default_weeks must be positive")
	}
	if c.Calendar.MaxWeeks < 0 {
		return fmt.Errorf("calendar.max_weeks must not be negative (0 disables the limit)")
	}
	if c.Calendar.MaxWeeks > 0 && c.Calendar.DefaultWeeks > c.Calendar.MaxWeeks {
		return fmt.Errorf("calendar.default_weeks (%d) exceeds calendar.max_weeks (%d)",
			c.Calendar.DefaultWeeks, c.Calendar.MaxWeeks)
	}
	if c.Calendar.MinYear < 0 {
		return fmt.Errorf("calendar.min_year must not be negative")
	}
	if c.Calendar.YearsAhead < 0 {
		return fmt.Errorf("calendar.years_ahead must not be negative")
	}

	// Validate Export config
	switch strings.ToLower(c.Export.Format) {
	case "csv", "xlsx", "ics":
	default:
		return fmt.Errorf("export.format must be 'csv', 'xlsx' or 'ics', got '%s'", c.Export.Format)
	}

	return nil
}
