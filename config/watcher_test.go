package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kay-ou/SimTradeLab-sub001/logging"
)

func TestWatcherLoadsInitialConfig(t *testing.T) {
	root := t.TempDir()
	cfg := NewDefaultConfig()
	cfg.Metrics.Port = 4321
	require.NoError(t, Write(root, cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewFromFile(ctx, logging.NewTestLogger(), root)
	require.NoError(t, err)

	assert.Equal(t, 4321, w.Get().Metrics.Port)
}

func TestWatcherMissingFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := NewFromFile(ctx, logging.NewTestLogger(), t.TempDir())
	assert.Error(t, err)
}

func TestWatcherNotifiesOnUpdate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Write(root, NewDefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewFromFile(ctx, logging.NewTestLogger(), root)
	require.NoError(t, err)

	updated := make(chan Config, 1)
	w.OnConfigUpdate(func(c Config) {
		select {
		case updated <- c:
		default:
		}
	})

	cfg := NewDefaultConfig()
	cfg.Metrics.Port = 5555
	require.NoError(t, Write(root, cfg))

	deadline := time.After(5 * time.Second)
	for {
		w.Poll()
		select {
		case got := <-updated:
			assert.Equal(t, 5555, got.Metrics.Port)
			return
		case <-deadline:
			t.Fatal("timed out waiting for config update")
		case <-time.After(50 * time.Millisecond):
		}
	}
}
