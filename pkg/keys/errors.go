package keys

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Errors returned by key generation and import.
var (
	ErrInvalidScalar     = errors.New("private scalar out of range [1, n-1]")
	ErrInvalidOrder      = errors.New("group order must be at least 2")
	ErrSamplingExhausted = errors.New("random source produced no acceptable scalar")
	ErrKeyMismatch       = errors.New("public point does not match private scalar")
	ErrInvalidMaterial   = errors.New("key material has the wrong length or byte order")
	ErrCurveMismatch     = errors.New("key material belongs to a different curve")
	ErrNilArgument       = errors.New("nil curve or random source")
)

// Error kinds of the underlying curve and field, re-exported so callers can
// match them with errors.Is without importing internal packages.
const (
	ErrInvalidCurvePoint = curves.ErrInvalidCurvePoint
	ErrMalformedConstant = curves.ErrMalformedConstant
	ErrInvalidParameters = curves.ErrInvalidParameters
	ErrUnknownCurve      = curves.ErrUnknownCurve
	ErrDivisionByZero    = field.ErrDivisionByZero
	ErrNoInverse         = field.ErrNoInverse
)
