package squircle

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is reported for parameters that cannot be turned into
// an outline, such as NaN or infinite dimensions. Out-of-range finite values
// are clamped instead.
var ErrInvalidParameter = errors.New("squircle: invalid parameter")

// ParameterError describes which parameter was rejected. It matches
// [ErrInvalidParameter] with [errors.Is].
type ParameterError struct {
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("squircle: invalid parameter %s: %v is not finite", e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// SyntaxError is returned by [ParseSVG] for malformed path data.
type SyntaxError struct {
	// Offset is the byte offset at which the error was detected.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("squircle: bad path data at offset %d: %s", e.Offset, e.Msg)
}
