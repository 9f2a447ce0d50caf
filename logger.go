package dpllsat

import (
	"log"
	"os"
)

// Logger is the leveled logging interface the core and its collaborators
// use, passed in explicitly rather than reached for as a global logging
// category. Debug-level messages cover routine bookkeeping (clause/variable creation,
// load-time tautology/empty-clause drops); Info covers search-affecting
// events (clause/variable removal); Error covers programmer-error
// conditions that do not rise to a panic.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards every message. It is the default Logger when none is
// supplied.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// StdLogger adapts the standard library's *log.Logger to the Logger
// interface, with an independent on/off switch per level. It configures a
// bare *log.Logger with no timestamp prefix, for CLI output.
type StdLogger struct {
	l          *log.Logger
	debug      bool
	info       bool
	errorLevel bool
}

// NewStdLogger returns a StdLogger writing to os.Stderr with Info and Error
// enabled but Debug disabled, matching non-verbose CLI behavior; verbose
// mode (the CLI front-ends' -v flag) enables Debug via SetDebug.
func NewStdLogger() *StdLogger {
	return &StdLogger{
		l:          log.New(os.Stderr, "", 0),
		info:       true,
		errorLevel: true,
	}
}

// SetDebug toggles whether Debugf messages are emitted.
func (s *StdLogger) SetDebug(enabled bool) {
	s.debug = enabled
}

func (s *StdLogger) Debugf(format string, args ...interface{}) {
	if s.debug {
		s.l.Printf("debug: "+format, args...)
	}
}

func (s *StdLogger) Infof(format string, args ...interface{}) {
	if s.info {
		s.l.Printf("info: "+format, args...)
	}
}

func (s *StdLogger) Errorf(format string, args ...interface{}) {
	if s.errorLevel {
		s.l.Printf("error: "+format, args...)
	}
}
