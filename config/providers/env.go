package providers

import (
	"github.com/caarlos0/env/v11"
)

type EnvProvider struct {
	prefix string
	env    map[string]string
}

func (p *EnvProvider) WithEnv(env map[string]string) *EnvProvider {
	p.env = env
	return p
}

// Load overrides the fields of cfg tagged with `env` from the environment,
// leaving untagged fields and unset variables alone.
func (p *EnvProvider) Load(cfg any) error {
	opts := env.Options{
		Prefix: p.prefix + "_",
	}
	if p.env != nil {
		opts.Environment = p.env
	}
	return env.ParseWithOptions(cfg, opts)
}

func NewEnvProvider(prefix string) *EnvProvider {
	return &EnvProvider{prefix: prefix}
}
