package mortgage

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Callers discriminate with
// errors.Is; the wrapped message carries the offending parameter.
var (
	// ErrInvalidArgument indicates an input that fails validation, such as a
	// non-positive term or a negative principal or rate. Validation happens
	// before any computation, so no partial result accompanies this error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericOverflow indicates that pathological inputs produced a
	// non-finite intermediate result. The engine surfaces this rather than
	// letting NaN or Inf propagate into output.
	ErrNumericOverflow = errors.New("numeric overflow")
)

func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

func overflowf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNumericOverflow)...)
}
