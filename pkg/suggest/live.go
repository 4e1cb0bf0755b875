package suggest

import (
	"sync/atomic"

	"github.com/bastiangx/wordspell/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Live serves a Suggester that is rebuilt whenever its Reloader swaps in a new dictionary.
type Live struct {
	opts    Options
	current atomic.Pointer[Suggester]
}

// NewLive indexes the reloader's current dictionary and follows its reloads.
func NewLive(rl *dictionary.Reloader, opts Options) *Live {
	l := &Live{opts: opts}
	l.current.Store(New(rl.Current(), opts))
	rl.OnReload(l.rebuild)
	return l
}

// Static wraps a fixed suggester.
func Static(s *Suggester) *Live {
	l := &Live{opts: s.opts}
	l.current.Store(s)
	return l
}

// Engine returns the suggester for the current dictionary.
func (l *Live) Engine() ISuggester {
	return l.current.Load()
}

func (l *Live) rebuild(d *dictionary.Dictionary) {
	l.current.Store(New(d, l.opts))
	log.Debugf("Suggestion index rebuilt for %d words", d.Len())
}
