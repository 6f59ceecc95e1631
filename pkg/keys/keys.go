// Package keys derives elliptic-curve key pairs: a private scalar drawn by
// rejection sampling and the public point obtained by scalar multiplication
// of the curve's base point.
//
// The random source is always supplied by the caller. Curves are immutable
// and may be shared between goroutines; a KeyPair is an immutable value.
package keys

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// KeyPair is a private scalar k in [1, n-1] and the public point k·G.
type KeyPair struct {
	curve   *Curve
	private *big.Int
	public  Point
}

// Generate draws a private scalar below the curve order from rng and derives
// the matching public point.
func Generate(curve *Curve, rng io.Reader) (*KeyPair, error) {
	g, err := NewGenerator(curve, rng)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// NewKeyPair derives the key pair for a known private scalar. The scalar must
// lie in [1, n-1]. A curve whose order is wrong for its base point can map a
// scalar to the identity; that is reported as ErrInvalidCurvePoint.
func NewKeyPair(curve *Curve, k *big.Int) (*KeyPair, error) {
	if curve == nil || k == nil {
		return nil, ErrNilArgument
	}
	if k.Sign() <= 0 || k.Cmp(curve.Order()) >= 0 {
		return nil, errors.Wrapf(ErrInvalidScalar, "curve %s", curve.Name())
	}

	private := new(big.Int).Set(k)
	public := curve.ScalarBaseMult(private)
	if public.IsIdentity() {
		// only possible when the configured order is not the base point's
		return nil, errors.Wrapf(ErrInvalidCurvePoint, "curve %s: k·G is the identity", curve.Name())
	}
	return &KeyPair{
		curve:   curve,
		private: private,
		public:  public,
	}, nil
}

// Curve returns the curve the pair belongs to.
func (kp *KeyPair) Curve() *Curve {
	return kp.curve
}

// Private returns a copy of the private scalar.
func (kp *KeyPair) Private() *big.Int {
	return new(big.Int).Set(kp.private)
}

// Public returns the public point.
func (kp *KeyPair) Public() Point {
	return kp.public
}

// Verify recomputes the public point from the private scalar and reports an
// error if they disagree.
func (kp *KeyPair) Verify() error {
	if !kp.curve.IsOnCurve(kp.public) || kp.public.IsIdentity() {
		return errors.Wrap(ErrInvalidCurvePoint, "public key")
	}
	if !kp.curve.ScalarBaseMult(kp.private).Equal(kp.public) {
		return ErrKeyMismatch
	}
	return nil
}
