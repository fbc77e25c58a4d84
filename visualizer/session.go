package visualizer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrAlreadyRunning is returned when a replay is started while another
	// one holds the session.
	ErrAlreadyRunning = errors.New("visualizer: animation already running")

	// ErrBadDelay is returned for a zero or negative step delay.
	ErrBadDelay = errors.New("visualizer: delay must be positive")
)

// Delays sets the pace of a replay per phase.
type Delays struct {
	Visited time.Duration
	Path    time.Duration
}

// DefaultDelays returns 100ms per visited tile and 40ms per path tile.
func DefaultDelays() Delays {
	return Delays{Visited: 100 * time.Millisecond, Path: 40 * time.Millisecond}
}

func (d Delays) validate() error {
	if d.Visited <= 0 {
		return fmt.Errorf("%w: visited %v", ErrBadDelay, d.Visited)
	}
	if d.Path <= 0 {
		return fmt.Errorf("%w: path %v", ErrBadDelay, d.Path)
	}
	return nil
}

func (d Delays) of(s TileState) time.Duration {
	if s == Path {
		return d.Path
	}
	return d.Visited
}

// Session guards a board against overlapping replays. The zero value is
// ready to use.
type Session struct {
	mu      sync.Mutex
	running bool
}

// Begin marks the session busy.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	return nil
}

// End marks the session idle. Calling End on an idle session is a no-op.
func (s *Session) End() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Running reports whether a replay holds the session.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Play clears b and applies steps one tick apart, calling frame after each
// step. The tick switches from d.Visited to d.Path when the path phase
// begins. Play holds the session until it returns.
func (s *Session) Play(ctx context.Context, b *Board, steps []Step, d Delays, frame func(Step)) error {
	if err := d.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Begin(); err != nil {
		return err
	}
	defer s.End()

	b.Reset()
	if len(steps) == 0 {
		return nil
	}

	phase := steps[0].State
	ticker := time.NewTicker(d.of(phase))
	defer ticker.Stop()

	for _, st := range steps {
		if st.State != phase {
			phase = st.State
			ticker.Reset(d.of(phase))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		b.Apply(st)
		if frame != nil {
			frame(st)
		}
	}
	return nil
}
