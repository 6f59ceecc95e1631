package curves

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Params holds a copy of the parameters of a curve y² = x³ + ax + b over the
// prime field of order P.
type Params struct {
	Name    string   // the canonical name of the curve
	OID     string   // dotted object identifier, empty if unknown
	P       *big.Int // the order of the underlying field
	A       *big.Int // the linear coefficient of the curve equation
	B       *big.Int // the constant of the curve equation
	N       *big.Int // the order of the base point
	Gx, Gy  *big.Int // (x,y) of the base point
	BitSize int      // the size of the underlying field
}

// Config is an immutable named short-Weierstrass curve together with its base
// point and the order of the subgroup the base point generates.
//
// A Config never changes after NewConfig returns, so a single value can be
// shared by any number of goroutines without synchronization.
type Config struct {
	name  string
	oid   string
	field *field.Field
	a, b  *big.Int
	n     *big.Int
	g     Point
}

type options struct {
	oid  string
	oddY bool
}

// Option configures NewConfig.
type Option func(*options)

// WithOID records the object identifier of the curve, in dotted form, for
// key encoders.
func WithOID(oid string) Option {
	return func(o *options) {
		o.oid = oid
	}
}

// WithOddBaseY selects the odd square root for the base point's y-coordinate.
// The even root is used otherwise.
func WithOddBaseY() Option {
	return func(o *options) {
		o.oddY = true
	}
}

// NewConfig builds the curve y² = x³ + ax + b over GF(p) with base point
// x-coordinate baseX and base point order. The y-coordinate of the base point
// is recovered with a modular square root; ErrInvalidCurvePoint is returned
// when baseX is not the x-coordinate of any point on the curve.
//
// The parameters are not validated beyond what is needed to build the field:
// singular curves and wrong orders are accepted as given.
func NewConfig(name string, a, b, p, baseX, order *big.Int, opts ...Option) (*Config, error) {
	if a == nil || b == nil || p == nil || baseX == nil || order == nil {
		return nil, errors.Wrapf(ErrInvalidParameters, "curve %s: missing parameter", name)
	}
	if order.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "curve %s: order must be positive", name)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f, err := field.New(p)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParameters, "curve %s: %v", name, err)
	}
	if baseX.Sign() < 0 || baseX.Cmp(p) >= 0 {
		return nil, errors.Wrapf(ErrInvalidCurvePoint, "curve %s: base x out of range", name)
	}

	c := &Config{
		name:  name,
		oid:   o.oid,
		field: f,
		a:     f.Reduce(a),
		b:     f.Reduce(b),
		n:     new(big.Int).Set(order),
	}

	g, err := c.DecompressPoint(baseX, o.oddY)
	if err != nil {
		return nil, errors.Wrapf(err, "curve %s: base point", name)
	}
	c.g = g

	return c, nil
}

// NewConfigFromHex is NewConfig with the numeric constants given as hex
// literals (optionally signed, optionally 0x-prefixed). ErrMalformedConstant
// is returned for any literal that does not parse.
func NewConfigFromHex(name, a, b, p, baseX, order string, opts ...Option) (*Config, error) {
	lits := []struct {
		what string
		s    string
	}{
		{"a", a}, {"b", b}, {"p", p}, {"base x", baseX}, {"order", order},
	}

	vals := make([]*big.Int, len(lits))
	for i, l := range lits {
		v, err := ParseConstant(l.s)
		if err != nil {
			return nil, errors.Wrapf(err, "curve %s: %s", name, l.what)
		}
		vals[i] = v
	}

	return NewConfig(name, vals[0], vals[1], vals[2], vals[3], vals[4], opts...)
}

// ParseConstant parses a hex literal such as "0x1f", "1F" or "-3".
func ParseConstant(s string) (*big.Int, error) {
	lit := strings.TrimSpace(s)
	neg := strings.HasPrefix(lit, "-")
	lit = strings.TrimPrefix(lit, "-")
	lit = strings.TrimPrefix(strings.TrimPrefix(lit, "0x"), "0X")

	v, ok := new(big.Int).SetString(lit, 16)
	if lit == "" || !ok || strings.HasPrefix(lit, "+") || strings.HasPrefix(lit, "-") {
		return nil, errors.Wrapf(ErrMalformedConstant, "cannot parse %q as hex", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// Name returns the curve name.
func (c *Config) Name() string {
	return c.name
}

// OID returns the dotted object identifier of the curve, or "" if none was
// configured.
func (c *Config) OID() string {
	return c.oid
}

// Field returns the prime field the curve is defined over.
func (c *Config) Field() *field.Field {
	return c.field
}

// Order returns a copy of the order of the base point.
func (c *Config) Order() *big.Int {
	return new(big.Int).Set(c.n)
}

// Generator returns the base point.
func (c *Config) Generator() Point {
	return c.g
}

// CoordinateByteLen is the fixed width of an encoded coordinate.
func (c *Config) CoordinateByteLen() int {
	return c.field.ByteLen()
}

// ScalarByteLen is the fixed width of an encoded scalar.
func (c *Config) ScalarByteLen() int {
	return (c.n.BitLen() + 7) / 8
}

// Params returns a copy of the curve parameters.
func (c *Config) Params() *Params {
	return &Params{
		Name:    c.name,
		OID:     c.oid,
		P:       c.field.Modulus(),
		A:       new(big.Int).Set(c.a),
		B:       new(big.Int).Set(c.b),
		N:       new(big.Int).Set(c.n),
		Gx:      c.g.X(),
		Gy:      c.g.Y(),
		BitSize: c.field.BitSize(),
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (y² = x³ + %xx + %x mod %x)", c.name, c.a, c.b, c.field.Modulus())
}
