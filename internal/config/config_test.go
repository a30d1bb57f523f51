// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/emvtlv"
	"codello.dev/emvtlv/internal/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emvtlv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, emvtlv.DefaultMaxDepth, config.Decoder.MaxDepth)
	assert.Equal(t, "text", config.Output.Format)

	level, err := config.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	expand, err := config.ExpansionSet()
	require.NoError(t, err)
	assert.Empty(t, expand)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
decoder:
  expand: ["70", "0xBF0C"]
  strict: true
  skip_padding: true
output:
  format: json
logging:
  level: debug
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"70", "0xBF0C"}, config.Decoder.Expand)
	assert.True(t, config.Decoder.Strict)
	assert.True(t, config.Decoder.SkipPadding)
	assert.Equal(t, emvtlv.DefaultMaxDepth, config.Decoder.MaxDepth, "missing keys keep their defaults")
	assert.Equal(t, "json", config.Output.Format)

	d, err := config.NewDecoder(slog.Default())
	require.NoError(t, err)
	assert.Equal(t, []uint64{0x70, 0xBF0C}, d.Expand.IDs())
	assert.True(t, d.Strict)
	assert.True(t, d.SkipPadding)
	assert.NotNil(t, d.Logger)
}

func TestLoadConfig_Templates(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "decoder:\n  templates: true\n  expand: [\"E1\"]\n"))
	require.NoError(t, err)

	expand, err := config.ExpansionSet()
	require.NoError(t, err)
	assert.True(t, expand.Contains(0x70))
	assert.True(t, expand.Contains(0xBF0C))
	assert.True(t, expand.Contains(0xE1))
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := map[string]struct {
		content string
		wantErr error
	}{
		"InvalidTag":    {"decoder:\n  expand: [\"9F\"]\n", emvtlv.ErrInvalidTag},
		"NotHex":        {"decoder:\n  expand: [\"zz\"]\n", emvtlv.ErrInvalidTag},
		"UnknownFormat": {"output:\n  format: xml\n", output.ErrUnknownFormat},
		"NegativeDepth": {"decoder:\n  max_depth: -1\n", nil},
		"BadLevel":      {"logging:\n  level: loud\n", nil},
		"BadYAML":       {"decoder: [\n", nil},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
