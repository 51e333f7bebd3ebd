package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.App.LogLevel)
	assert.Equal(t, "System Requirements Specification", cfg.Document.Title)
	assert.Equal(t, "gebo", cfg.Document.ToolID)
	assert.Empty(t, cfg.Output.Path)
}

func TestConfigValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Document.Title = ""
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Document.ToolID = ""
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Output.Path = "anywhere/doc.reqif"
	assert.NoError(t, cfg.Validate())
}
