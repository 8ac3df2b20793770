package ulogger

import (
	"sync"
	"testing"
)

// TestLogger discards everything. Fatalf does not exit.
type TestLogger struct{}

func (l *TestLogger) LogLevel() int                                { return 0 }
func (l *TestLogger) SetLogLevel(level string)                     {}
func (l *TestLogger) Debugf(format string, args ...interface{})    {}
func (l *TestLogger) Infof(format string, args ...interface{})     {}
func (l *TestLogger) Warnf(format string, args ...interface{})     {}
func (l *TestLogger) Errorf(format string, args ...interface{})    {}
func (l *TestLogger) Fatalf(format string, args ...interface{})    {}
func (l *TestLogger) New(service string, options ...Option) Logger { return l }
func (l *TestLogger) Duplicate(options ...Option) Logger           { return l }

// VerboseTestLogger writes every line to the test log, prefixed with the
// level and the service name.
type VerboseTestLogger struct {
	t       testing.TB
	service string
	mutex   *sync.Mutex
}

func NewVerboseTestLogger(t testing.TB) *VerboseTestLogger {
	return &VerboseTestLogger{t: t, service: "test", mutex: &sync.Mutex{}}
}

func (l *VerboseTestLogger) LogLevel() int {
	return 0
}

func (l *VerboseTestLogger) SetLogLevel(level string) {}

func (l *VerboseTestLogger) New(service string, options ...Option) Logger {
	return &VerboseTestLogger{t: l.t, service: service, mutex: l.mutex}
}

func (l *VerboseTestLogger) Duplicate(options ...Option) Logger {
	return l
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.logf("DEBUG", format, args...)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.logf("INFO", format, args...)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.logf("WARN", format, args...)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.logf("ERROR", format, args...)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.t.Fatalf("[FATAL] ["+l.service+"] "+format, args...)
}

func (l *VerboseTestLogger) logf(level, format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.t.Helper()
	l.t.Logf("["+level+"] ["+l.service+"] "+format, args...)
}
