package config

import (
	"github.com/ker0olos/sift/config/providers"
	"github.com/ker0olos/sift/constants"
)

// Loader is configuration loader
type Loader struct {
	cfg         *Config
	envPrefix   string
	env         map[string]string
	filename    string
	fileContent []byte
}

func NewLoader(cfg *Config) *Loader {
	return &Loader{cfg: cfg}
}

func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// WithEnv replaces the process environment, mostly for testing.
func (l *Loader) WithEnv(env map[string]string) *Loader {
	l.env = env
	return l
}

func (l *Loader) WithFilename(filename string) *Loader {
	l.filename = filename
	return l
}

func (l *Loader) WithFileContent(content []byte) *Loader {
	l.fileContent = content
	return l
}

func (l *Loader) Load() error {
	err := providers.NewYAMLProvider(l.filename, l.fileContent).Load(l.cfg)
	if err != nil {
		return err
	}

	if l.envPrefix != "" {
		err = providers.NewEnvProvider(l.envPrefix).WithEnv(l.env).Load(l.cfg)
		if err != nil {
			return err
		}
	}

	return l.cfg.PostProcess()
}

func Load(filename string, cfg *Config) error {
	return NewLoader(cfg).WithEnvPrefix(constants.EnvPrefix).WithFilename(filename).Load()
}
