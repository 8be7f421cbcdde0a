package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen        string `yaml:"listen"`
	DSN           string `yaml:"dsn"`
	SigningSecret string `yaml:"signingSecret"`
	// Timezone is the IANA location used for every day boundary in the
	// service (today's entries, report ranges). One zone, all call sites.
	Timezone               string        `yaml:"-"`
	EmployeeSessionTimeout time.Duration `yaml:"-"`
	AdminSessionTimeout    time.Duration `yaml:"-"`
	ExportBucket           string        `yaml:"exportBucket"`
	LogFile                string        `yaml:"logFile"`
}

// UnmarshalYAML parses the timeout fields from duration strings ("8h",
// "45m"); yaml.v3 has no native time.Duration support.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type raw struct {
		Listen                 string `yaml:"listen"`
		DSN                    string `yaml:"dsn"`
		SigningSecret          string `yaml:"signingSecret"`
		Timezone               string `yaml:"timezone"`
		EmployeeSessionTimeout string `yaml:"employeeSessionTimeout"`
		AdminSessionTimeout    string `yaml:"adminSessionTimeout"`
		ExportBucket           string `yaml:"exportBucket"`
		LogFile                string `yaml:"logFile"`
	}

	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}

	if r.Listen != "" {
		c.Listen = r.Listen
	}
	if r.DSN != "" {
		c.DSN = r.DSN
	}
	if r.SigningSecret != "" {
		c.SigningSecret = r.SigningSecret
	}
	if r.Timezone != "" {
		c.Timezone = r.Timezone
	}
	if r.ExportBucket != "" {
		c.ExportBucket = r.ExportBucket
	}
	if r.LogFile != "" {
		c.LogFile = r.LogFile
	}
	if r.EmployeeSessionTimeout != "" {
		d, err := time.ParseDuration(r.EmployeeSessionTimeout)
		if err != nil {
			return fmt.Errorf("employeeSessionTimeout: %w", err)
		}
		c.EmployeeSessionTimeout = d
	}
	if r.AdminSessionTimeout != "" {
		d, err := time.ParseDuration(r.AdminSessionTimeout)
		if err != nil {
			return fmt.Errorf("adminSessionTimeout: %w", err)
		}
		c.AdminSessionTimeout = d
	}
	return nil
}

func defaults() Config {
	return Config{
		Listen:                 "0.0.0.0:8090",
		Timezone:               "Europe/Rome",
		EmployeeSessionTimeout: 8 * time.Hour,
		AdminSessionTimeout:    time.Hour,
		LogFile:                "logs/timbrapp.log",
	}
}

// Load reads the YAML config file when path is non-empty, then applies
// environment overrides. DSN and TIMBRAPP_SIGNING_SECRET must come from
// somewhere; everything else has a default.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if v := os.Getenv("DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("TIMBRAPP_SIGNING_SECRET"); v != "" {
		cfg.SigningSecret = v
	}
	if v := os.Getenv("TIMBRAPP_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("TIMBRAPP_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("TIMBRAPP_EXPORT_BUCKET"); v != "" {
		cfg.ExportBucket = v
	}

	if cfg.DSN == "" {
		return cfg, fmt.Errorf("missing DSN (config file or DSN env var)")
	}
	if cfg.SigningSecret == "" {
		return cfg, fmt.Errorf("missing signing secret (config file or TIMBRAPP_SIGNING_SECRET env var)")
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}
