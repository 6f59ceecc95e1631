package curves

// ErrorKind identifies a kind of curve error. It supports errors.Is so
// callers can check for a kind without inspecting the message.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// These constants are used to identify a specific curve error.
const (
	// ErrInvalidCurvePoint is returned when an x-coordinate has no matching
	// y on the curve, i.e. x³ + ax + b is a quadratic non-residue, or when a
	// coordinate pair does not satisfy the curve equation.
	ErrInvalidCurvePoint = ErrorKind("ErrInvalidCurvePoint")

	// ErrMalformedConstant is returned when a curve, prime or order literal
	// cannot be parsed.
	ErrMalformedConstant = ErrorKind("ErrMalformedConstant")

	// ErrInvalidParameters is returned when curve parameters are structurally
	// unusable (missing values, even modulus, non-positive order).
	ErrInvalidParameters = ErrorKind("ErrInvalidParameters")

	// ErrUnknownCurve is returned by ByName for names with no registered
	// curve.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")
)
