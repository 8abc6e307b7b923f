// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"context"
	"fmt"
	"sync"
)

// Lazy wraps an Engine constructor so that concurrent first callers
// share a single initialization attempt instead of racing independent
// ones. Success is cached until Close; a failed attempt clears the cell
// so a later Get starts a fresh attempt.
type Lazy struct {
	init func(ctx context.Context) (Engine, error)

	mu       sync.Mutex
	eng      Engine
	lastErr  error
	inflight chan struct{} // non-nil while an attempt is running
}

// NewLazy returns a Lazy cell around init. init runs at most once per
// attempt, on the goroutine of the Get call that started it.
func NewLazy(init func(ctx context.Context) (Engine, error)) *Lazy {
	return &Lazy{init: init}
}

// Get returns the initialized engine, starting or joining an
// initialization attempt as needed. Callers joining a running attempt
// wait for its outcome; ctx cancellation releases the waiter but not
// the attempt itself.
func (l *Lazy) Get(ctx context.Context) (Engine, error) {
	l.mu.Lock()

	if l.eng != nil {
		eng := l.eng
		l.mu.Unlock()
		return eng, nil
	}

	if l.inflight != nil {
		done := l.inflight
		l.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		l.mu.Lock()
		eng, err := l.eng, l.lastErr
		l.mu.Unlock()

		if eng != nil {
			return eng, nil
		}
		return nil, fmt.Errorf("engine init: %w", err)
	}

	done := make(chan struct{})
	l.inflight = done
	l.mu.Unlock()

	eng, err := l.init(ctx)

	l.mu.Lock()
	if err == nil {
		l.eng = eng
	}
	l.lastErr = err
	l.inflight = nil
	close(done)
	l.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("engine init: %w", err)
	}
	return eng, nil
}

// Close releases the cached engine, if any, and resets the cell.
func (l *Lazy) Close() error {
	l.mu.Lock()
	eng := l.eng
	l.eng = nil
	l.lastErr = nil
	l.mu.Unlock()

	if eng == nil {
		return nil
	}

	err := eng.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
