package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("duct", "poem.txt", true)

	assert.Equal(t, &Config{
		Query:         "duct",
		Filename:      "poem.txt",
		CaseSensitive: true,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}, cfg)
}

func TestNewConfig_KeepsEmptyQueryAndFilename(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("", "", false)

	assert.Empty(t, cfg.Query)
	assert.Empty(t, cfg.Filename)
	assert.False(t, cfg.CaseSensitive)
}
