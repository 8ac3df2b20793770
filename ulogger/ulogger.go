// Package ulogger is the logging facade of lavrovd. The backend is chosen by
// the logger_type setting.
package ulogger

// ANSI color codes used by the pretty console writer.
const (
	colorBold   = 1
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
	colorBlue   = 34
	colorWhite  = 37
)

// Logger types accepted by WithLoggerType.
const (
	LoggerTypeZerolog = "zerolog"
	LoggerTypeGoCore  = "gocore"
	LoggerTypeTest    = "test"
)

type Logger interface {
	LogLevel() int
	SetLogLevel(level string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	New(service string, options ...Option) Logger
	Duplicate(options ...Option) Logger
}

// New returns a logger for service. Unknown logger types fall back to
// zerolog.
func New(service string, options ...Option) Logger {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	switch opts.loggerType {
	case LoggerTypeGoCore:
		return NewGoCoreLogger(service, options...)
	case LoggerTypeTest:
		return &TestLogger{}
	default:
		return NewZeroLogger(service, options...)
	}
}
