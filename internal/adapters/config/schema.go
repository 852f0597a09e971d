package config

import (
	"strings"
	"time"

	"go.trai.ch/histo/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Settings is the shape of histo.yaml and of the HISTO_* environment variables.
type Settings struct {
	CacheDir  string        `yaml:"cache_dir" split_words:"true"`
	Solution  Command       `yaml:"solution"`
	Timeout   time.Duration `yaml:"timeout"`
	LockWait  time.Duration `yaml:"lock_wait" split_words:"true"`
	LogFormat string        `yaml:"log_format" split_words:"true"`
	Jobs      int           `yaml:"jobs"`
}

func settingsFrom(cfg domain.Config) Settings {
	return Settings{
		CacheDir:  cfg.CacheDir,
		Solution:  Command(cfg.Solution),
		Timeout:   cfg.Timeout,
		LockWait:  cfg.LockWait,
		LogFormat: cfg.LogFormat,
		Jobs:      cfg.Jobs,
	}
}

func (s Settings) toDomain() domain.Config {
	return domain.Config{
		CacheDir:  s.CacheDir,
		Solution:  []string(s.Solution),
		Timeout:   s.Timeout,
		LockWait:  s.LockWait,
		LogFormat: s.LogFormat,
		Jobs:      s.Jobs,
	}
}

// Command is a solution command line. In YAML it is either a list of arguments or a single
// string split on whitespace; in the environment it is always a whitespace-separated string.
type Command []string

// UnmarshalYAML accepts a scalar or a sequence.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*c = strings.Fields(value.Value)
		return nil
	}
	var args []string
	if err := value.Decode(&args); err != nil {
		return err
	}
	*c = args
	return nil
}

// Decode implements envconfig.Decoder.
func (c *Command) Decode(value string) error {
	*c = strings.Fields(value)
	return nil
}
