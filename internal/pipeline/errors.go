package pipeline

import "github.com/pkg/errors"

// Kind names one of §7's fatal error categories.
type Kind string

const (
	ConfigError   Kind = "ConfigError"
	IOOpenError   Kind = "IOOpenError"
	IOReadError   Kind = "IOReadError"
	IOWriteError  Kind = "IOWriteError"
	ResourceError Kind = "ResourceError"
)

// Error wraps a fatal run error with its §7 kind. All pipeline errors are
// fatal; there is no retry path.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

func wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: errors.Wrap(err, msg)}
}
