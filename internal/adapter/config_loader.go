package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/selfprint/internal/model"
)

// DefaultConfigFile is read from the working directory when no --config flag
// is given.
const DefaultConfigFile = ".selfprint.yaml"

// ConfigLoader reads CLI settings from a YAML file.
type ConfigLoader interface {
	// Load merges the file at path over the defaults. A missing file is not
	// an error when optional is true.
	Load(path m.Path, optional bool) (m.Config, error)
}

// LocalConfigLoader loads configuration files from disk.
type LocalConfigLoader struct{}

// NewLocalConfigLoader constructs a LocalConfigLoader.
func NewLocalConfigLoader() *LocalConfigLoader {
	return &LocalConfigLoader{}
}

// Load decodes path over model.DefaultConfig.
func (l *LocalConfigLoader) Load(path m.Path, optional bool) (m.Config, error) {
	cfg := m.DefaultConfig()

	// #nosec G304 - config path comes from the command line
	data, err := os.ReadFile(string(path))
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return m.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}

		return m.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}

	return cfg, nil
}
