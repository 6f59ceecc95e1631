package curves

import (
	"fmt"
	"math/big"
)

// Point is a point on a short-Weierstrass curve in affine coordinates, or the
// point at infinity. The zero value is the identity.
//
// Points are values: the coordinates are never exposed or mutated in place,
// so copies can be handed out without sharing state.
type Point struct {
	x, y   *big.Int
	affine bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). It does not check that the point
// is on any curve; use Config.NewPoint for that.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		affine: true,
	}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return !p.affine
}

// X returns a copy of the x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same point. The identity is only
// equal to itself.
func (p Point) Equal(q Point) bool {
	if p.affine != q.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.affine {
		return "Identity"
	}
	return fmt.Sprintf("(%064x, %064x)", p.x, p.y)
}
