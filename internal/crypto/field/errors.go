package field

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// These constants are used to identify a specific field error.
const (
	// ErrInvalidModulus is returned when a field is requested for a modulus
	// that cannot be an odd prime.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrDivisionByZero is returned when the denominator of a division is
	// congruent to zero modulo p.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrNoInverse is returned when an element shares a factor with the
	// modulus. For a prime modulus this only happens for zero.
	ErrNoInverse = ErrorKind("ErrNoInverse")
)
