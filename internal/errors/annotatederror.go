package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError includes more context than a plain error that is useful for troubleshooting.
type annotatedError struct {
	// msg describes what was being done when the error happened.
	msg string
	// err is the wrapped error, nil for errors created with New.
	err error
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
}

// New creates an error with the given message and attributes. The call site is recorded for logging.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:   msg,
		err:   nil,
		pc:    callerPC(),
		attrs: attrs,
	}
}

// Wrap annotates err with msg and attributes. The call site is recorded for logging.
//
// Wrap returns nil if err is nil so that it can be used directly on return values.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		msg:   msg,
		err:   err,
		pc:    callerPC(),
		attrs: attrs,
	}
}

// NewSentinel creates a plain error without other context that can be detected with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg) //nolint:err113 // sentinels are created here.
}

// callerPC returns the program counter of the caller of New or Wrap.
func callerPC() uintptr {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerPC and New/Wrap.
	runtime.Callers(3, pcs[:]) //nolint:mnd // see above
	return pcs[0]
}

// Error implements error interface.
func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.err.Error())
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *annotatedError) Unwrap() error {
	return e.err
}

// source returns the file:line where the error was created or wrapped.
func (e *annotatedError) source() string {
	frames := runtime.CallersFrames([]uintptr{e.pc})
	frame, _ := frames.Next()
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// LogValue formats the error for useful logging.
func (e *annotatedError) LogValue() slog.Value {
	attrs := append(
		[]slog.Attr{slog.String("msg", e.Error()), slog.String("source", e.source())},
		e.attrs...,
	)
	return slog.GroupValue(attrs...)
}

// SlogError returns an attribute with the error message and the annotations of every annotated error in the chain.
//
// The source of the innermost annotated error is reported because it is closest to the root cause.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		attrs  []slog.Attr
		source string
	)
	for current := err; current != nil; current = errors.Unwrap(current) {
		if annotated, ok := current.(*annotatedError); ok { //nolint:errorlint // walking the chain manually.
			source = annotated.source()
			attrs = append(attrs, annotated.attrs...)
		}
	}
	group := []any{slog.String("msg", err.Error())}
	if source != "" {
		group = append(group, slog.String("source", source))
	}
	for _, attr := range attrs {
		group = append(group, attr)
	}
	return slog.Group("error", group...)
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
