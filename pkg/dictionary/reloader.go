package dictionary

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Reloader keeps the dictionary at a path current while the service runs.
// Readers call Current; a failed reload keeps the previous dictionary in place.
type Reloader struct {
	path    string
	enc     Encoding
	current atomic.Pointer[Dictionary]

	mu       sync.Mutex
	onReload []func(*Dictionary)
	reloads  int
	failures int
}

// NewReloader loads the dictionary at path.
func NewReloader(path string, enc Encoding) (*Reloader, error) {
	rl := &Reloader{path: filepath.Clean(path), enc: enc}
	if err := rl.Reload(); err != nil {
		return nil, err
	}
	return rl, nil
}

// Current returns the dictionary in use.
func (rl *Reloader) Current() *Dictionary {
	return rl.current.Load()
}

// Path returns the watched file.
func (rl *Reloader) Path() string {
	return rl.path
}

// OnReload registers fn to run after every successful reload.
func (rl *Reloader) OnReload(fn func(*Dictionary)) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.onReload = append(rl.onReload, fn)
}

// Reload reads the file again and swaps it in.
func (rl *Reloader) Reload() error {
	dict, err := LoadFile(rl.path, rl.enc)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if err != nil {
		rl.failures++
		return fmt.Errorf("reload of %s failed: %w", rl.path, err)
	}
	rl.current.Store(dict)
	rl.reloads++
	for _, fn := range rl.onReload {
		fn(dict)
	}
	return nil
}

// Counts returns the number of successful and failed loads so far.
func (rl *Reloader) Counts() (reloads, failures int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.reloads, rl.failures
}

// Watch reloads the dictionary whenever its file is written or replaced, until ctx is done.
// The parent directory is watched so editors that save by rename are picked up too.
func (rl *Reloader) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(rl.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", rl.path, err)
	}
	log.Debugf("Watching dictionary %s", rl.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != rl.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := rl.Reload(); err != nil {
				log.Warnf("Keeping previous dictionary: %v", err)
				continue
			}
			log.Infof("Dictionary reloaded: %d words", rl.Current().Len())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("Watcher error: %v", err)
		}
	}
}
