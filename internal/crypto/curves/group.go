package curves

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

var three = big.NewInt(3)

// Polynomial returns x³ + ax + b mod p.
func (c *Config) Polynomial(x *big.Int) *big.Int {
	f := c.field
	x3 := f.Mul(f.Square(x), x)
	return f.Add(f.Add(x3, f.Mul(c.a, x)), c.b)
}

// IsOnCurve reports whether p satisfies y² = x³ + ax + b with both
// coordinates reduced. The identity is on every curve.
func (c *Config) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return true
	}
	mod := c.field.Modulus()
	if p.x.Sign() < 0 || p.x.Cmp(mod) >= 0 || p.y.Sign() < 0 || p.y.Cmp(mod) >= 0 {
		return false
	}
	return c.field.Square(p.y).Cmp(c.Polynomial(p.x)) == 0
}

// NewPoint returns the affine point (x, y) after checking that it lies on the
// curve.
func (c *Config) NewPoint(x, y *big.Int) (Point, error) {
	p := NewPoint(x, y)
	if !c.IsOnCurve(p) {
		return Identity(), errors.Wrapf(ErrInvalidCurvePoint, "(%x, %x) is not on %s", x, y, c.name)
	}
	return p, nil
}

// DecompressPoint recovers the point with x-coordinate x whose y-coordinate
// has the requested parity. ErrInvalidCurvePoint is returned when x³ + ax + b
// has no square root, or when the only root is zero and odd is set.
func (c *Config) DecompressPoint(x *big.Int, odd bool) (Point, error) {
	f := c.field
	if x.Sign() < 0 || x.Cmp(f.Modulus()) >= 0 {
		return Identity(), errors.Wrapf(ErrInvalidCurvePoint, "x %x out of range", x)
	}

	y, ok := f.Sqrt(c.Polynomial(x))
	if !ok {
		return Identity(), errors.Wrapf(ErrInvalidCurvePoint, "no point with x = %x on %s", x, c.name)
	}
	if odd != (y.Bit(0) == 1) {
		if y.Sign() == 0 {
			return Identity(), errors.Wrapf(ErrInvalidCurvePoint, "no odd y for x = %x on %s", x, c.name)
		}
		y = f.Neg(y)
	}
	return NewPoint(x, y), nil
}

// Neg returns -p.
func (c *Config) Neg(p Point) Point {
	if p.IsIdentity() {
		return p
	}
	return NewPoint(p.x, c.field.Neg(p.y))
}

// Add returns p + q.
//
// The cases are checked in order: equal points are doubled; points sharing x
// but not y are inverses and sum to the identity; an identity operand yields
// the other one; anything else uses the chord rule.
func (c *Config) Add(p, q Point) Point {
	p, q = c.reduce(p), c.reduce(q)

	if p.Equal(q) {
		return c.Double(p)
	}
	if !p.IsIdentity() && !q.IsIdentity() && p.x.Cmp(q.x) == 0 {
		return Identity()
	}
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}

	f := c.field
	// λ = (Qy - Py) / (Qx - Px)
	lambda, err := f.Div(f.Sub(q.y, p.y), f.Sub(q.x, p.x))
	if err != nil {
		panic(groupLawDefect("add", err))
	}

	// x3 = λ² - Qx - Px
	x3 := f.Sub(f.Sub(f.Square(lambda), q.x), p.x)
	// y3 = λ(Qx - x3) - Qy
	y3 := f.Sub(f.Mul(lambda, f.Sub(q.x, x3)), q.y)

	return Point{x: x3, y: y3, affine: true}
}

// Double returns 2p. Points of order two (y = 0) have a vertical tangent and
// double to the identity.
func (c *Config) Double(p Point) Point {
	p = c.reduce(p)
	if p.IsIdentity() {
		return p
	}

	f := c.field
	if f.IsZero(p.y) {
		return Identity()
	}

	// λ = (3·Px² + a) / (2·Py)
	num := f.Add(f.Mul(three, f.Square(p.x)), c.a)
	lambda, err := f.Div(num, f.Double(p.y))
	if err != nil {
		panic(groupLawDefect("double", err))
	}

	// x' = λ² - 2·Px
	x := f.Sub(f.Square(lambda), f.Double(p.x))
	// y' = λ(Px - x') - Py
	y := f.Sub(f.Mul(lambda, f.Sub(p.x, x)), p.y)

	return Point{x: x, y: y, affine: true}
}

// reduce brings both coordinates into [0, p) so that equality checks compare
// canonical representatives.
func (c *Config) reduce(p Point) Point {
	if p.IsIdentity() {
		return p
	}
	mod := c.field.Modulus()
	if p.x.Sign() >= 0 && p.x.Cmp(mod) < 0 && p.y.Sign() >= 0 && p.y.Cmp(mod) < 0 {
		return p
	}
	return Point{x: c.field.Reduce(p.x), y: c.field.Reduce(p.y), affine: true}
}

func groupLawDefect(op string, err error) string {
	return fmt.Sprintf("curves: %s reached an impossible field error: %v", op, err)
}
