// Package apperr defines the closed set of fatal error kinds the generator
// can raise. Every error that crosses a component boundary is wrapped in an
// *Error so the CLI can report the offending path or vertex id_path and pick
// an exit code, without string-matching error messages.
package apperr

import "fmt"

// Kind is one of a closed set of fatal error categories. There is no retry
// policy for any kind; every one surfaces to the CLI and ends the process.
type Kind string

const (
	ConfigRead      Kind = "ConfigRead"
	ConfigParse     Kind = "ConfigParse"
	TemplateRender  Kind = "TemplateRender"
	SchemaViolation Kind = "SchemaViolation"
	UnknownRef      Kind = "UnknownRef"
	MissingProperty Kind = "MissingProperty"
	ScriptRead      Kind = "ScriptRead"
	IO              Kind = "IO"
)

// Error is the error type raised by every component. Path identifies the
// offending file path, and IDPath (when non-empty) identifies the offending
// vertex by its id_path segments - at least one of the two is normally set.
type Error struct {
	Kind   Kind
	Path   string
	IDPath []string
	Cause  error
}

func (e *Error) Error() string {
	loc := e.Path
	if len(e.IDPath) > 0 {
		if loc != "" {
			loc += " "
		}
		loc += fmt.Sprintf("(%s)", joinIDPath(e.IDPath))
	}
	if loc == "" {
		loc = "<unknown>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, loc, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, loc)
}

func (e *Error) Unwrap() error { return e.Cause }

func joinIDPath(segs []string) string {
	out := segs[0]
	for _, s := range segs[1:] {
		out += "/" + s
	}
	return out
}

// New builds an *Error for the given kind and path, wrapping cause.
func New(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Cause: cause}
}

// WithIDPath builds an *Error identified by a vertex id_path rather than a
// filesystem path.
func WithIDPath(kind Kind, idPath []string, cause error) *Error {
	return &Error{Kind: kind, IDPath: idPath, Cause: cause}
}

// ExitCode maps an error's Kind to a process exit code bucket. Any error not
// wrapped as *Error (a programmer error, not a domain error) exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if !asError(err, &e) {
		return 1
	}
	switch e.Kind {
	case ConfigRead, ConfigParse, TemplateRender:
		return 2
	case SchemaViolation, UnknownRef, MissingProperty:
		return 3
	case ScriptRead, IO:
		return 4
	default:
		return 1
	}
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
