package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/premerge/src/merge"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.False(t, cfg.Merge.Enabled())
	assert.Equal(t, merge.StrategyDefault, cfg.Merge.Options().Strategy())
}

func TestReadMissingFileFails(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadYAML(t *testing.T) {
	path := writeTempFile(t, ".premerge.yml", `
version: 2
requires: ">= 0.1.0"
merge:
  remote: origin
  target: main
  strategy: ours
  fast_forward_mode: NO_FF
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ">= 0.1.0", cfg.Requires)

	o := cfg.Merge.Options()
	assert.Equal(t, "origin/main", o.Ref())
	assert.Equal(t, merge.StrategyOurs, o.Strategy())
	assert.Equal(t, merge.NoFastForward, o.FastForwardMode())
}

func TestLoadTOML(t *testing.T) {
	path := writeTempFile(t, "premerge.toml", `
version = 2

[merge]
remote = "upstream"
target = "release"
strategy = "subtree"
fast_forward_mode = "FF_ONLY"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	o := cfg.Merge.Options()
	assert.Equal(t, "upstream/release", o.Ref())
	assert.Equal(t, merge.StrategySubtree, o.Strategy())
	assert.Equal(t, merge.FastForwardOnly, o.FastForwardMode())
}

func TestLoadKeepsUnknownIdentifiers(t *testing.T) {
	path := writeTempFile(t, ".premerge.yml", `
version: 2
merge:
  remote: origin
  target: main
  strategy: some-future-strategy-v9
  fast_forward_mode: FF_MAYBE
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "some-future-strategy-v9", cfg.Merge.Strategy)

	o := cfg.Merge.Options()
	assert.Equal(t, merge.StrategyDefault, o.Strategy())
	assert.Equal(t, merge.FastForward, o.FastForwardMode())
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"no version":     "merge:\n  remote: origin\n",
		"future version": "version: 7\n",
		"v1 key in v2":   "version: 2\npre_build_merge:\n  remote_branch_name: origin\n",
		"v2 key in v1":   "version: 1\nmerge:\n  remote: origin\n",
		"malformed yaml": "version: [\n",
		"empty document": "",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, "c.yml", content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFor("a/b.toml"))
	assert.Equal(t, FormatTOML, FormatFor("B.TOML"))
	assert.Equal(t, FormatYAML, FormatFor(".premerge.yml"))
	assert.Equal(t, FormatYAML, FormatFor("config.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("noext"))
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := &Config{
				Version:  CurrentVersion,
				Requires: "^1.2",
				Merge:    MergeConfigFrom(merge.New("origin", "main", "retired-strategy", "NO_FF")),
			}

			require.NoError(t, Save(path, want))
			got, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMergeConfigFromIsInverse(t *testing.T) {
	o := merge.New("origin", "feature/x", "octopus", "garbage")
	assert.Equal(t, o, MergeConfigFrom(o).Options())
}
