package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".premerge.yml"

// CurrentVersion is the schema version written by this build.
const CurrentVersion = 2

// Format is the on-disk encoding of a config file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the encoding from the file extension. Anything that is
// not .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// Config is the top-level premerge configuration.
type Config struct {
	Version  int         `yaml:"version" toml:"version"`
	Requires string      `yaml:"requires,omitempty" toml:"requires,omitempty"`
	Merge    MergeConfig `yaml:"merge" toml:"merge"`
}

// document is the union of every schema version's top-level keys.
type document struct {
	Version       int                  `yaml:"version" toml:"version"`
	Requires      string               `yaml:"requires" toml:"requires"`
	Merge         *MergeConfig         `yaml:"merge" toml:"merge"`
	PreBuildMerge *PreBuildMergeConfig `yaml:"pre_build_merge" toml:"pre_build_merge"`
}

// Load reads configuration from a YAML or TOML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	cfg, err := Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Read is Load without the missing-file fallback.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config document of any supported schema version and
// upgrades it to the current one.
func Parse(data []byte, format Format) (*Config, error) {
	var doc document
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", format, err)
	}
	return upgrade(doc)
}

// Save writes cfg at the current schema version, encoded per the path's
// extension.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg, FormatFor(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Marshal encodes cfg at the current schema version.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	out := *cfg
	out.Version = CurrentVersion

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(out)
	default:
		data, err = yaml.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return data, nil
}

func unmarshal(data []byte, format Format, v any) error {
	if format == FormatTOML {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func defaults() *Config {
	return &Config{
		Version: CurrentVersion,
		Merge:   DefaultMergeConfig(),
	}
}
