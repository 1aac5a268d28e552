// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureForTest(t *testing.T, cfg Config) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	Reset()
	Configure(cfg)
	t.Cleanup(func() {
		Reset()
		zerolog.SetGlobalLevel(prev)
	})
}

func TestConfigure_Fields(t *testing.T) {
	var buf bytes.Buffer
	configureForTest(t, Config{Level: "debug", Output: &buf, Service: "chain-test", Version: "v0.0.1"})

	l := WithComponent("node")
	l.Debug().Int(FieldLength, 3).Msg("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "chain-test", entry[FieldService])
	assert.Equal(t, "v0.0.1", entry[FieldVersion])
	assert.Equal(t, "node", entry[FieldComponent])
	assert.EqualValues(t, 3, entry[FieldLength])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_OnlyFirstCallApplies(t *testing.T) {
	var first, second bytes.Buffer
	configureForTest(t, Config{Output: &first})
	Configure(Config{Output: &second})

	l := Base()
	l.Info().Msg("once")

	assert.NotZero(t, first.Len())
	assert.Zero(t, second.Len())
}

func TestConfigure_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	configureForTest(t, Config{Level: "warn", Output: &buf})

	l := Base()
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	configureForTest(t, Config{Level: "loud", Output: &buf})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestConfigure_EnvLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	configureForTest(t, Config{Output: &buf})

	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}
