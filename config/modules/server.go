package modules

import (
	"fmt"
	"net"
	"time"

	"github.com/ker0olos/sift/utils"
)

type ServerConfig struct {
	BaseConfig
	Listen       string `yaml:"listen" json:"listen" env:"LISTEN" default:"127.0.0.1:8000"`
	MaxBodySize  int64  `yaml:"max_body_size" json:"max_body_size" env:"MAX_BODY_SIZE" default:"1048576"`
	ReadTimeout  int64  `yaml:"read_timeout" json:"read_timeout" env:"READ_TIMEOUT" default:"10"`
	WriteTimeout int64  `yaml:"write_timeout" json:"write_timeout" env:"WRITE_TIMEOUT" default:"10"`
	TLS          TLS    `yaml:"tls" json:"tls" envPrefix:"TLS_"`
}

func (cfg ServerConfig) Validate() error {
	if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
		return fmt.Errorf("invalid listen '%s': %s", cfg.Listen, err)
	}
	if cfg.MaxBodySize < 0 {
		return fmt.Errorf("max_body_size cannot be negative value")
	}
	if cfg.ReadTimeout < 0 || cfg.WriteTimeout < 0 {
		return fmt.Errorf("timeouts cannot be negative value")
	}
	return nil
}

func (cfg ServerConfig) URL() string {
	return utils.ListenAddrToURL(cfg.TLS.Enabled(), cfg.Listen)
}

func (cfg ServerConfig) Timeouts() (read time.Duration, write time.Duration) {
	return utils.DurationS(cfg.ReadTimeout), utils.DurationS(cfg.WriteTimeout)
}

type TLS struct {
	Cert string `yaml:"cert" json:"cert" env:"CERT"`
	Key  string `yaml:"key" json:"key" env:"KEY"`
}

func (cfg TLS) Enabled() bool {
	return cfg.Cert != "" && cfg.Key != ""
}
