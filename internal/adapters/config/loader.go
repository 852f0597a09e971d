// Package config provides the configuration loader for histo.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file and HISTO_* variables.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Load resolves the configuration with precedence defaults < file < environment < overrides.
func (l *Loader) Load(path string, overrides domain.Overrides) (*domain.Config, error) {
	settings := settingsFrom(domain.DefaultConfig())

	if err := l.readFile(path, &settings); err != nil {
		return nil, err
	}

	if err := envconfig.Process(domain.EnvPrefix, &settings); err != nil {
		return nil, domain.Wrap(domain.ErrConfigEnvFailed, err)
	}

	cfg := settings.toDomain()
	overrides.Apply(&cfg)

	if err := l.validate.Struct(&cfg); err != nil {
		return nil, l.validationError(err)
	}
	return &cfg, nil
}

// readFile decodes path over settings. A missing or empty file leaves settings untouched.
// A relative cache_dir is resolved against the directory holding the file.
func (l *Loader) readFile(path string, settings *Settings) error {
	if path == "" {
		return nil
	}

	//nolint:gosec // path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(domain.Wrap(domain.ErrConfigReadFailed, err), "path", path)
	}

	before := settings.CacheDir
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(domain.Wrap(domain.ErrConfigParseFailed, err), "path", path)
	}

	if settings.CacheDir != before && settings.CacheDir != "" && !filepath.IsAbs(settings.CacheDir) {
		settings.CacheDir = filepath.Join(filepath.Dir(path), settings.CacheDir)
	}
	return nil
}

func (l *Loader) validationError(err error) error {
	wrapped := domain.Wrap(domain.ErrInvalidConfig, err)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		wrapped = zerr.With(wrapped, "field", first.Field())
		wrapped = zerr.With(wrapped, "rule", first.Tag())
	}
	return wrapped
}
