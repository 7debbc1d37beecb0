// Package testing switches the application into test mode for any test
// binary that imports it.
package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("SUPPLYHUB_TEST_MODE", "1")
		if os.Getenv("CACHE_DRIVER") == "" {
			_ = os.Setenv("CACHE_DRIVER", "memory")
		}
	})
}

func init() {
	ensureTestMode()
}

// TestMain runs m with test mode enabled.
func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
