package codegen

import "fmt"

// Severity classifies a generation diagnostic. Every diagnostic the compiler
// produces today is a build warning.
type Severity uint8

const (
	// SeverityBuild marks a diagnostic raised while compiling a dictionary.
	SeverityBuild Severity = iota
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityBuild {
		return "build"
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// Warning is one generation diagnostic.
type Warning struct {
	// Message describes the problem, prefixed with the object label.
	Message string

	// Severity is always SeverityBuild.
	Severity Severity
}

// WarningSink receives diagnostics in entry-processing order.
// Pass NoopSink to discard them.
type WarningSink interface {
	// Append records one diagnostic.
	Append(w Warning)
}

// ListSink collects warnings in order. The zero value is ready to use.
type ListSink struct {
	Warnings []Warning
}

// Append records the warning.
func (s *ListSink) Append(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// NoopSink discards all warnings.
type NoopSink struct{}

// Append discards the warning.
func (NoopSink) Append(Warning) {}

// Compile-time interface satisfaction checks.
var (
	_ WarningSink = (*ListSink)(nil)
	_ WarningSink = NoopSink{}
)

// warnf formats and appends one build warning.
func warnf(sink WarningSink, format string, args ...any) {
	sink.Append(Warning{
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityBuild,
	})
}
