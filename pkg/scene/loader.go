package scene

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/mesh"
)

// Loaded is a fully built chain ready to attach
type Loaded struct {
	Chain    chain.Chain
	Group    *mesh.Group
	Duration time.Duration
}

// Loader runs chain acquisition off the render loop and hands the finished
// group over exactly once per load. The render loop only ever sees complete
// groups: building happens in the acquisition goroutine, attaching happens
// in Poll on the render side.
type Loader struct {
	build  func([]geometry.Vector3) *mesh.Group
	logger *slog.Logger
	ready  chan Loaded

	mu      sync.Mutex
	loading bool
	err     error
	done    chan struct{}
}

// NewLoader creates a loader that builds groups with build
func NewLoader(build func([]geometry.Vector3) *mesh.Group) *Loader {
	if build == nil {
		build = mesh.BuildChain
	}
	done := make(chan struct{})
	close(done)
	return &Loader{
		build:  build,
		logger: slog.Default().With("component", "loader"),
		ready:  make(chan Loaded, 1),
		done:   done,
	}
}

// Start begins one acquisition. It returns false without doing anything
// if a load is already in flight. Failures are logged and kept in Err;
// they never reach the caller of Poll.
func (l *Loader) Start(ctx context.Context, src chain.Source) bool {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return false
	}
	l.loading = true
	l.err = nil
	l.done = make(chan struct{})
	done := l.done
	l.mu.Unlock()

	go func() {
		defer close(done)
		started := time.Now()

		c, err := src.Load(ctx)
		if err != nil {
			l.logger.Warn("chain acquisition failed", "err", err)
			l.finish(err)
			return
		}

		group := l.build(c)
		l.logger.Debug("chain built", "points", c.Len(), "segments", group.Len())

		// a newer result replaces one the render loop has not picked up
		select {
		case <-l.ready:
		default:
		}
		l.ready <- Loaded{Chain: c, Group: group, Duration: time.Since(started)}
		l.finish(nil)
	}()

	return true
}

func (l *Loader) finish(err error) {
	l.mu.Lock()
	l.loading = false
	l.err = err
	l.mu.Unlock()
}

// Poll returns a finished load if one is waiting. It never blocks.
func (l *Loader) Poll() (Loaded, bool) {
	select {
	case r := <-l.ready:
		return r, true
	default:
		return Loaded{}, false
	}
}

// Apply attaches a waiting load to the scene and reports whether it did
func (l *Loader) Apply(sc *Context) (Loaded, bool) {
	r, ok := l.Poll()
	if !ok {
		return Loaded{}, false
	}
	sc.Attach(r.Group)
	return r, true
}

// Loading reports whether an acquisition is in flight
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the error of the last finished acquisition
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Wait blocks until the current acquisition finishes or ctx is done
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
