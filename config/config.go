package config

import (
	"encoding/json"

	"github.com/creasty/defaults"
	"github.com/ker0olos/sift/config/modules"
	"github.com/ker0olos/sift/config/types"
	"github.com/ker0olos/sift/utils"
)

var _ types.Config = &Config{}

// Config Configuration
type Config struct {
	modules.BaseConfig
	Log       modules.LogConfig       `yaml:"log" json:"log" envPrefix:"LOG_"`
	AccessLog modules.AccessLogConfig `yaml:"access_log" json:"access_log" envPrefix:"ACCESS_LOG_"`
	Server    modules.ServerConfig    `yaml:"server" json:"server" envPrefix:"SERVER_"`
	Routes    []modules.RouteConfig   `yaml:"routes" json:"routes" envPrefix:"ROUTES_" validate:"unique=Path,dive"`
}

func (cfg Config) String() string {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	if err := cfg.AccessLog.Validate(); err != nil {
		return err
	}
	if err := cfg.Server.Validate(); err != nil {
		return err
	}
	return utils.Validate(&cfg)
}

func New() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}
