// Package field implements arithmetic modulo a fixed odd prime p.
//
// Elements are represented as *big.Int values. Every operation returns a
// freshly allocated value in [0, p) and never mutates its arguments, so
// results can be shared freely between callers.
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Field is the prime field Z/pZ. It is immutable once created.
type Field struct {
	p *big.Int

	// sqrtExp is (p+1)/4, only set when p ≡ 3 (mod 4).
	sqrtExp *big.Int
	// legendreExp is (p-1)/2.
	legendreExp *big.Int
}

// New returns the field for modulus p. The modulus is assumed to be prime;
// only the cheap structural requirements (odd, greater than 2) are checked.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(three) < 0 || p.Bit(0) == 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "modulus %v must be an odd prime", p)
	}

	f := &Field{p: new(big.Int).Set(p)}

	f.legendreExp = new(big.Int).Sub(f.p, one)
	f.legendreExp.Rsh(f.legendreExp, 1)

	if new(big.Int).Mod(f.p, four).Cmp(three) == 0 {
		f.sqrtExp = new(big.Int).Add(f.p, one)
		f.sqrtExp.Rsh(f.sqrtExp, 2)
	}
	return f, nil
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitSize returns the bit length of p.
func (f *Field) BitSize() int {
	return f.p.BitLen()
}

// ByteLen returns the number of bytes needed to hold any element.
func (f *Field) ByteLen() int {
	return (f.p.BitLen() + 7) / 8
}

// Reduce returns a mod p as a non-negative representative. Negative inputs
// are accepted.
func (f *Field) Reduce(a *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, the result is always in [0, p).
	return new(big.Int).Mod(a, f.p)
}

// Add returns (a + b) mod p.
func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

// Sub returns (a - b) mod p. The intermediate difference is signed, so a < b
// still yields the representative in [0, p).
func (f *Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

// Neg returns -a mod p.
func (f *Field) Neg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, f.p)
}

// Mul returns (a * b) mod p.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

// Square returns a² mod p.
func (f *Field) Square(a *big.Int) *big.Int {
	return f.Mul(a, a)
}

// Exp returns a^e mod p using left-to-right square-and-multiply. The exponent
// must be non-negative.
func (f *Field) Exp(a, e *big.Int) *big.Int {
	if e.Sign() < 0 {
		panic("field: negative exponent")
	}

	base := f.Reduce(a)
	result := big.NewInt(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = f.Square(result)
		if e.Bit(i) == 1 {
			result = f.Mul(result, base)
		}
	}
	return result.Mod(result, f.p)
}

// Inv returns a⁻¹ mod p. It fails with ErrNoInverse when gcd(a, p) != 1,
// which for a prime modulus means a ≡ 0.
func (f *Field) Inv(a *big.Int) (*big.Int, error) {
	r := f.Reduce(a)
	if r.Sign() == 0 || r.ModInverse(r, f.p) == nil {
		return nil, errors.Wrapf(ErrNoInverse, "no inverse of %x mod %x", a, f.p)
	}
	return r, nil
}

// Div returns a / b mod p. A denominator congruent to zero is reported as
// ErrDivisionByZero.
func (f *Field) Div(a, b *big.Int) (*big.Int, error) {
	if f.IsZero(b) {
		return nil, errors.Wrapf(ErrDivisionByZero, "divide %x by zero mod %x", a, f.p)
	}
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}

// IsZero reports whether a ≡ 0 (mod p).
func (f *Field) IsZero(a *big.Int) bool {
	return f.Reduce(a).Sign() == 0
}

// Equal reports whether a ≡ b (mod p).
func (f *Field) Equal(a, b *big.Int) bool {
	return f.Reduce(a).Cmp(f.Reduce(b)) == 0
}

// IsSquare reports whether a is a quadratic residue mod p, zero included.
func (f *Field) IsSquare(a *big.Int) bool {
	if f.IsZero(a) {
		return true
	}
	return f.Exp(a, f.legendreExp).Cmp(one) == 0
}

// Sqrt returns r with r² ≡ a (mod p). The boolean is false when a is a
// non-residue. Which of the two roots is returned is unspecified.
func (f *Field) Sqrt(a *big.Int) (*big.Int, bool) {
	x := f.Reduce(a)

	var r *big.Int
	if f.sqrtExp != nil {
		r = f.Exp(x, f.sqrtExp)
	} else {
		r = new(big.Int).ModSqrt(x, f.p)
		if r == nil {
			return nil, false
		}
	}

	if f.Square(r).Cmp(x) != 0 {
		return nil, false
	}
	return r, true
}

// Double returns 2a mod p.
func (f *Field) Double(a *big.Int) *big.Int {
	return f.Mul(a, two)
}
