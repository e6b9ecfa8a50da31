package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("loaded config", zap.String("path", ".premerge.yml"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "info loaded config")
	assert.Contains(t, out, `{"path": ".premerge.yml"}`)

	buf.Reset()
	New(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "debug shown")
}

func TestContext(t *testing.T) {
	assert.NotNil(t, From(context.Background()))

	var buf bytes.Buffer
	ctx := With(context.Background(), New(&buf, false))
	From(ctx).Warn("stale strategy")
	assert.Contains(t, buf.String(), "warn stale strategy")
}
