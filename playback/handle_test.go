// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"
	"testing"
)

func TestNewHandle(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3, 4}
	h := NewHandle(data)

	if h.ID() == "" {
		t.Error("NewHandle() produced empty id")
	}
	if h.Released() {
		t.Error("fresh handle reports released")
	}
	if got := h.Bytes(); len(got) != 4 {
		t.Errorf("Bytes() len = %d, want 4", len(got))
	}
}

func TestHandle_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _i := 0; _i < 100; _i++ {
		id := NewHandle(nil).ID()
		if seen[id] {
			t.Fatalf("duplicate handle id %q", id)
		}
		seen[id] = true
	}
}

func TestSession_InstallReleasesPrevious(t *testing.T) {
	t.Parallel()

	s := NewSession()

	h1 := NewHandle([]byte{1})
	h2 := NewHandle([]byte{2})

	s.Install(h1)
	if s.Current() != h1 {
		t.Fatal("Install() did not set current handle")
	}

	s.Install(h2)
	if s.Current() != h2 {
		t.Fatal("Install() did not replace current handle")
	}
	if !h1.Released() {
		t.Error("previous handle was not released on replacement")
	}
	if h2.Released() {
		t.Error("new handle must stay live")
	}
	if h1.Bytes() != nil {
		t.Error("released handle still exposes its payload")
	}
}

func TestSession_ReleaseIdempotent(t *testing.T) {
	t.Parallel()

	s := NewSession()
	h := NewHandle([]byte{1})

	s.Install(h)
	s.Release(h)
	if !h.Released() {
		t.Fatal("Release() did not revoke the handle")
	}
	if s.Current() != nil {
		t.Error("Release() left the handle installed")
	}

	// Releasing again, releasing nil, and releasing a handle the
	// session never saw are all no-ops.
	s.Release(h)
	s.Release(nil)
	s.Release(NewHandle([]byte{9}))
}

func TestSession_ReleaseUnknownKeepsCurrent(t *testing.T) {
	t.Parallel()

	s := NewSession()
	h := NewHandle([]byte{1})
	s.Install(h)

	s.Release(NewHandle([]byte{2}))

	if s.Current() != h {
		t.Error("releasing an unknown handle displaced the current one")
	}
	if h.Released() {
		t.Error("releasing an unknown handle revoked the current one")
	}
}

func TestSession_Close(t *testing.T) {
	t.Parallel()

	s := NewSession()
	h := NewHandle([]byte{1})
	s.Install(h)

	s.Close()

	if s.Current() != nil {
		t.Error("Close() left a handle installed")
	}
	if !h.Released() {
		t.Error("Close() did not release the handle")
	}

	// Close on an empty session is a no-op.
	s.Close()
}

func TestSession_ConcurrentInstall(t *testing.T) {
	t.Parallel()

	s := NewSession()
	handles := make([]*Handle, 50)
	for i := range handles {
		handles[i] = NewHandle([]byte{byte(i)})
	}

	var wg sync.WaitGroup
	for _, h := range handles {
		h := h
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Install(h)
		}()
	}
	wg.Wait()

	// Exactly one handle survives; all the others were released.
	live := 0
	for _, h := range handles {
		if !h.Released() {
			live++
			if s.Current() != h {
				t.Error("live handle is not the installed one")
			}
		}
	}
	if live != 1 {
		t.Errorf("live handles = %d, want 1", live)
	}
}
