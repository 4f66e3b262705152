package generator

// Logger is the leveled logging contract the generator expects. It mirrors
// the surface exposed by github.com/goliatone/go-logger so host applications
// can plug that package in without an adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// NoopLogger returns a logger that discards everything. It is the default
// when no logger is configured.
func NoopLogger() Logger { return noopLogger{} }
