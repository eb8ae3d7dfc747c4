package log

// nopLogger drops every record. It is what library code and tests get
// when no level was configured ("none"), keeping real output an
// explicit choice of the CLI edge.
type nopLogger struct{}

var _ Logger = nopLogger{}

// NewNopLogger returns a logger that discards all records.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }

func (nopLogger) Impl() any { return nil }
