package leaktest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf calls so a failing check can be asserted on
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.failed = true
}

func TestCheckNoGoroutineLeak_Clean(t *testing.T) {
	rec := &recordingTB{TB: t}
	CheckNoGoroutineLeak(rec, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
	assert.False(t, rec.failed)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	release := make(chan struct{})
	defer close(release)

	checker := NewGoroutineChecker(rec)
	go func() { <-release }()
	checker.Check(0)

	assert.True(t, rec.failed)
}
