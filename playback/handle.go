// SPDX-License-Identifier: EPL-2.0

// Package playback manages the lifecycle of encoded audio handed to the
// host audio subsystem. A Handle is an opaque, revocable reference to
// one encoded container; a Session keeps at most one handle live at a
// time and releases the previous one before installing a replacement.
package playback

import (
	"sync"

	"github.com/google/uuid"
)

// Handle wraps one encoded container behind a revocable id. It is
// created from exactly one container and owned by a single session;
// after Release the payload is gone.
type Handle struct {
	mu       sync.Mutex
	id       string
	data     []byte
	released bool
}

// NewHandle wraps container in a fresh handle. It never fails for a
// well-formed container; malformed containers are rejected upstream by
// the encoder.
func NewHandle(container []byte) *Handle {
	return &Handle{
		id:   uuid.New().String(),
		data: container,
	}
}

// ID returns the opaque reference string for the handle, stable for its
// whole lifetime including after release.
func (h *Handle) ID() string { return h.id }

// Bytes returns the encoded container, or nil after release.
func (h *Handle) Bytes() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return nil
	}
	return h.data
}

// Released reports whether the handle has been revoked.
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.released
}

// release revokes the handle. Idempotent.
func (h *Handle) release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.released = true
	h.data = nil
}

// Session tracks the single live handle of one playback session.
type Session struct {
	mu      sync.Mutex
	current *Handle
}

func NewSession() *Session {
	return &Session{}
}

// Install makes h the session's live handle, releasing any previous
// one first. Installing nil just releases the current handle.
func (s *Session) Install(h *Handle) {
	s.mu.Lock()
	prev := s.current
	s.current = h
	s.mu.Unlock()

	if prev != nil && prev != h {
		prev.release()
	}
}

// Release revokes h. Releasing an already-released or unknown handle is
// a no-op, not an error; if h is the session's current handle the
// session is left empty.
func (s *Session) Release(h *Handle) {
	if h == nil {
		return
	}

	s.mu.Lock()
	if s.current == h {
		s.current = nil
	}
	s.mu.Unlock()

	h.release()
}

// Current returns the live handle, or nil.
func (s *Session) Current() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Close releases the current handle on session teardown.
func (s *Session) Close() {
	s.mu.Lock()
	h := s.current
	s.current = nil
	s.mu.Unlock()

	if h != nil {
		h.release()
	}
}
