package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = time.Second

// GoroutineChecker detects goroutines left running by the code under test,
// such as prompt waiters that never observe their timeout
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if, after waiting up to settleTimeout, more than
// tolerance goroutines remain beyond the recorded count
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	deadline := time.Now().Add(settleTimeout)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= target {
			return
		}
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
	}

	after := runtime.NumGoroutine()
	g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
		g.before, after, after-g.before, tolerance)
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
