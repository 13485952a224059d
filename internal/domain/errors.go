package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUsage       = errors.New("usage error")
	ErrRefused     = errors.New("refused by user")
	ErrInputClosed = errors.New("input closed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage         ErrorKind = "usage"
	KindRefused       ErrorKind = "refused"
	KindInputClosed   ErrorKind = "input_closed"
	KindIO            ErrorKind = "io"
	KindEncode        ErrorKind = "encode"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindNotFound      ErrorKind = "not_found"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// UsageError marks err as a command-line usage problem.
func UsageError(op string, err error) error {
	if err == nil {
		err = ErrUsage
	}
	return &OpError{Op: op, Kind: KindUsage, Err: err}
}
