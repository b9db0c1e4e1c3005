// Package log provides the structured logging abstraction used by chembal.
//
// The balancing pipeline itself is a pure function; logging is observation
// only. Library callers get the no-op logger unless they plug one in:
//
//	b := balancer.New(balancer.WithLogger(log.NewZerologAdapter()))
//
// Implement the Logger interface to integrate any other logging library:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
