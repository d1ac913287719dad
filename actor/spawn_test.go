package actor

import (
	"testing"
	"time"
)

func TestSpawnManyStartsIndependentActors(t *testing.T) {
	const n = 5
	results := make(chan Handle, n)

	handles := SpawnMany(n, func(c *Ctx) {
		results <- c.Self()
	})
	if len(handles) != n {
		t.Fatalf("want %d handles, got %d", n, len(handles))
	}

	seen := make(map[Handle]bool, n)
	for i := 0; i < n; i++ {
		h := <-results
		if seen[h] {
			t.Fatalf("duplicate self handle reported: %s", h)
		}
		seen[h] = true
	}

	for _, h := range handles {
		if !seen[h] {
			t.Fatalf("spawned handle %s never reported in", h)
		}
	}
}

func TestUnlinkRemovesPeerBeforeExit(t *testing.T) {
	errCh := make(chan error, 1)

	Spawn(func(a *Ctx) {
		b := a.SpawnLinked(func(c *Ctx) {
			// exits immediately, would normally raise LinkTerminated on a
		})
		a.Unlink(b)
		_, err := a.ReceiveTimeout(20*time.Millisecond, On1[int](func(int) {}))
		errCh <- err
	})

	if err := <-errCh; err != nil {
		t.Fatalf("unlinked peer's exit must not raise, got %v", err)
	}
}
