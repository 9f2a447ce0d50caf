package dpllsat

import (
	"fmt"
	"testing"
)

// recordingLogger records every Debugf call's formatted message, for
// asserting that a listener actually logged rather than merely not
// panicking.
type recordingLogger struct {
	debug []string
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Infof(string, ...interface{})  {}
func (r *recordingLogger) Errorf(string, ...interface{}) {}

func TestLoggingListenerLogsEveryEvent(t *testing.T) {
	rec := &recordingLogger{}
	l := NewLoggingListener(rec)

	f := NewFormula(nil)
	c := mustCreateClause(t, f, 1, lits(1, 2))
	lit := c.FirstLiteral()

	l.Init()
	l.OnDecide(lit)
	l.OnPropagate(lit, c)
	l.OnAssert(lit)
	l.OnConflict(c)
	l.OnBacktrack(lit)
	l.Cleanup()

	if len(rec.debug) != 7 {
		t.Fatalf("got %d debug messages, want 7 (one per Listener event): %v", len(rec.debug), rec.debug)
	}
}

func TestNewLoggingListenerNilLoggerDoesNotPanic(t *testing.T) {
	l := NewLoggingListener(nil)
	l.Init()
	l.Cleanup()
}
