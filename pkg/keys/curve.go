package keys

import (
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

// Curve is an immutable short-Weierstrass curve configuration. It is safe
// for concurrent use.
type Curve = curves.Config

// Point is a curve point or the identity.
type Point = curves.Point

// CurveOption configures NewCurve.
type CurveOption = curves.Option

// NewCurve builds a curve from its constants, recovering the base point's
// y-coordinate. It fails with ErrInvalidCurvePoint when baseX is not on the
// curve.
func NewCurve(name string, a, b, p, baseX, order *big.Int, opts ...CurveOption) (*Curve, error) {
	return curves.NewConfig(name, a, b, p, baseX, order, opts...)
}

// NewCurveFromHex is NewCurve with hex literals; unparsable literals fail
// with ErrMalformedConstant.
func NewCurveFromHex(name, a, b, p, baseX, order string, opts ...CurveOption) (*Curve, error) {
	return curves.NewConfigFromHex(name, a, b, p, baseX, order, opts...)
}

// CurveByName returns a built-in curve ("secp256k1", "P-256" and aliases).
func CurveByName(name string) (*Curve, error) {
	return curves.ByName(name)
}

// Secp256k1 returns the shared secp256k1 configuration.
func Secp256k1() *Curve {
	return curves.Secp256k1()
}

// P256 returns the shared NIST P-256 configuration.
func P256() *Curve {
	return curves.P256()
}

// WithOID sets the object identifier handed to key encoders.
func WithOID(oid string) CurveOption {
	return curves.WithOID(oid)
}

// WithOddBaseY selects the odd root for the base point's y-coordinate.
func WithOddBaseY() CurveOption {
	return curves.WithOddBaseY()
}

// CurveNames lists the canonical names of the built-in curves.
func CurveNames() []string {
	return curves.Names()
}
