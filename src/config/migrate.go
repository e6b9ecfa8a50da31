package config

import "fmt"

// MigrateToLatest takes raw config data and migrates it to the current schema version.
// Returns the migrated bytes, in the same format, ready for writing.
//
// Migration chain:
//
//	version 1 → 2 (pre_build_merge block becomes merge)
//	version 2 → current (no-op, already latest)
func MigrateToLatest(data []byte, format Format) ([]byte, error) {
	ver, err := peekVersion(data, format)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	switch ver {
	case CurrentVersion:
		// Already at the latest schema version, nothing to do.
		return data, nil
	case 1:
		cfg, err := Parse(data, format)
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return Marshal(cfg, format)
	case 0:
		return nil, fmt.Errorf("migrate: config has no version field; set version: %d", CurrentVersion)
	default:
		return nil, fmt.Errorf("migrate: unknown config version %d (latest supported: %d)", ver, CurrentVersion)
	}
}

// upgrade turns a decoded document into a current Config.
func upgrade(doc document) (*Config, error) {
	cfg := &Config{
		Version:  CurrentVersion,
		Requires: doc.Requires,
		Merge:    DefaultMergeConfig(),
	}

	switch doc.Version {
	case CurrentVersion:
		if doc.PreBuildMerge != nil {
			return nil, fmt.Errorf("pre_build_merge is a version 1 key; use merge")
		}
		if doc.Merge != nil {
			cfg.Merge = *doc.Merge
		}
	case 1:
		if doc.Merge != nil {
			return nil, fmt.Errorf("merge is a version %d key; use pre_build_merge or set version: %d", CurrentVersion, CurrentVersion)
		}
		if doc.PreBuildMerge != nil {
			cfg.Merge = MergeConfigFrom(doc.PreBuildMerge.Options())
		}
	case 0:
		return nil, fmt.Errorf("config has no version field; set version: %d", CurrentVersion)
	default:
		return nil, fmt.Errorf("unknown config version %d (latest supported: %d)", doc.Version, CurrentVersion)
	}

	return cfg, nil
}

// peekVersion extracts the version field without full parsing.
// Returns 0 if no version field is present.
func peekVersion(data []byte, format Format) (int, error) {
	var probe struct {
		Version int `yaml:"version" toml:"version"`
	}

	// Lenient decode; only the version matters here.
	if err := unmarshal(data, format, &probe); err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}

	return probe.Version, nil
}
