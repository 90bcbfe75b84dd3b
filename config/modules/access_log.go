package modules

import (
	"fmt"
	"slices"
)

type AccessLogConfig struct {
	Enabled bool      `yaml:"enabled" json:"enabled" env:"ENABLED" default:"true"`
	Format  LogFormat `yaml:"format" json:"format" env:"FORMAT" default:"text"`
	Colored bool      `yaml:"colored" json:"colored" env:"COLORED" default:"true"`
	File    string    `yaml:"file" json:"file" env:"FILE" default:"/dev/stdout"`
}

func (cfg AccessLogConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if !slices.Contains([]LogFormat{LogFormatText, LogFormatJson}, cfg.Format) {
		return fmt.Errorf("invalid format: %s", cfg.Format)
	}
	if cfg.File == "" {
		return fmt.Errorf("access_log.file is required")
	}
	return nil
}
