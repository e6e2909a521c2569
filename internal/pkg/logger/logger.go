// Package logger provides the logging abstraction shared by the CLI and the
// REST API, with console and rotating-file implementations.
package logger

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
