package actor

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutine spawned by any test in this package is
// still running once the suite finishes — the right tool for a library
// whose entire job is spawning goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
