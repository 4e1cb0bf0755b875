package dictionary

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloader(t *testing.T) {
	path := writeTemp(t, "live.dic", "[Words]\nalpha\n")

	rl, err := NewReloader(path, EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, path, rl.Path())
	assert.True(t, rl.Current().Contains("alpha"))

	var seen []int
	rl.OnReload(func(d *Dictionary) { seen = append(seen, d.Len()) })

	require.NoError(t, os.WriteFile(path, []byte("[Words]\nalpha\nbeta\n"), 0o644))
	require.NoError(t, rl.Reload())
	assert.True(t, rl.Current().Contains("beta"))
	assert.Equal(t, []int{2}, seen)

	require.NoError(t, os.Remove(path))
	assert.Error(t, rl.Reload())
	assert.True(t, rl.Current().Contains("beta"), "failed reload keeps the previous dictionary")
	assert.Equal(t, []int{2}, seen)

	reloads, failures := rl.Counts()
	assert.Equal(t, 2, reloads)
	assert.Equal(t, 1, failures)
}

func TestNewReloaderMissingFile(t *testing.T) {
	_, err := NewReloader("testdata/missing.dic", EncodingAuto)
	assert.Error(t, err)
}

func TestReloaderWatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping watcher test in short mode")
	}
	path := writeTemp(t, "watched.dic", "[Words]\nalpha\n")
	rl, err := NewReloader(path, EncodingAuto)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rl.Watch(ctx) }()

	// rewrite on every poll so an event sent before the watcher was ready is not lost
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("[Words]\nalpha\nzebra\n"), 0o644)
		return rl.Current().Contains("zebra")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
