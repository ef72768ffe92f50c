package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug": DebugLevel,
		"Info":  InfoLevel,
		"WARN":  WarnLevel,
		"error": ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestNamedLoggerHierarchy(t *testing.T) {
	log := NewTestLogger()
	child := log.Named("execution")
	grandchild := child.Named("matching")

	assert.Equal(t, "execution", child.GetName())
	assert.Equal(t, "execution.matching", grandchild.GetName())
}

func TestSetLevelIsIndependentPerClone(t *testing.T) {
	log := NewTestLogger()
	child := log.Named("child")

	child.SetLevel(ErrorLevel)
	assert.Equal(t, ErrorLevel, child.GetLevel())
	assert.Equal(t, DebugLevel, log.GetLevel())
}

func TestNewLoggerFromEnv(t *testing.T) {
	dev := NewLoggerFromEnv("dev")
	assert.Equal(t, DebugLevel, dev.GetLevel())

	prod := NewLoggerFromEnv("prod")
	assert.Equal(t, InfoLevel, prod.GetLevel())
}
