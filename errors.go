package fractal

import (
	"errors"
	"fmt"
)

// Error categories. Callers classify failures with errors.Is; the
// wrapped message carries the specific reason.
var (
	// ErrInvalidParameter reports a request field outside its documented
	// domain. The core fails fast instead of clamping so that validation
	// bugs in the calling layer surface.
	ErrInvalidParameter = errors.New("fractal: invalid parameter")

	// ErrResourceExceeded reports a requested image larger than the
	// configured pixel ceiling.
	ErrResourceExceeded = errors.New("fractal: resource limit exceeded")

	// ErrEncodingFailure reports that the raster encoder could not
	// serialize a finished image. It is internal, not user-correctable.
	ErrEncodingFailure = errors.New("fractal: encoding failure")
)

// invalidf wraps ErrInvalidParameter with a descriptive reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
