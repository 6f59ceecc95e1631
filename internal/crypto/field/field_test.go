package field

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secp256k1 field prime.
var secpP, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

func mustField(t testing.TB, p *big.Int) *Field {
	t.Helper()
	f, err := New(p)
	require.NoError(t, err)
	return f
}

func randElement(t testing.TB, f *Field) *big.Int {
	t.Helper()
	v, err := rand.Int(rand.Reader, f.Modulus())
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		p    *big.Int
		ok   bool
	}{
		{"nil", nil, false},
		{"two", big.NewInt(2), false},
		{"even", big.NewInt(100), false},
		{"negative", big.NewInt(-7), false},
		{"small prime", big.NewInt(23), true},
		{"secp256k1", secpP, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := New(tc.p)
			if !tc.ok {
				assert.True(t, errors.Is(err, ErrInvalidModulus))
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, f.Modulus().Cmp(tc.p))
		})
	}
}

func TestSmallFieldArithmetic(t *testing.T) {
	f := mustField(t, big.NewInt(23))

	tests := []struct {
		name string
		got  *big.Int
		want int64
	}{
		{"add wraps", f.Add(big.NewInt(20), big.NewInt(5)), 2},
		{"sub negative intermediate", f.Sub(big.NewInt(3), big.NewInt(10)), 16},
		{"sub equal", f.Sub(big.NewInt(7), big.NewInt(7)), 0},
		{"neg", f.Neg(big.NewInt(5)), 18},
		{"neg zero", f.Neg(big.NewInt(0)), 0},
		{"mul", f.Mul(big.NewInt(6), big.NewInt(7)), 19},
		{"square", f.Square(big.NewInt(10)), 8},
		{"exp", f.Exp(big.NewInt(5), big.NewInt(3)), 10},
		{"exp zero", f.Exp(big.NewInt(5), big.NewInt(0)), 1},
		{"fermat", f.Exp(big.NewInt(9), big.NewInt(22)), 1},
		{"reduce negative", f.Reduce(big.NewInt(-1)), 22},
		{"double", f.Double(big.NewInt(15)), 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got.Cmp(big.NewInt(tc.want)) != 0 {
				t.Errorf("got %s, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	f := mustField(t, secpP)

	for i := 0; i < 32; i++ {
		a := randElement(t, f)
		if f.IsZero(a) {
			continue
		}
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.Equal(t, 0, f.Mul(a, inv).Cmp(big.NewInt(1)), "a * a^-1 != 1 for %x", a)
	}

	_, err := f.Inv(big.NewInt(0))
	assert.True(t, errors.Is(err, ErrNoInverse))

	_, err = f.Inv(f.Modulus())
	assert.True(t, errors.Is(err, ErrNoInverse))
}

func TestDivide(t *testing.T) {
	f := mustField(t, big.NewInt(23))

	q, err := f.Div(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(12), q.Int64())

	_, err = f.Div(big.NewInt(5), big.NewInt(0))
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = f.Div(big.NewInt(5), big.NewInt(46))
	assert.True(t, errors.Is(err, ErrDivisionByZero), "multiples of p are zero denominators")
}

func TestAddSubRoundTrip(t *testing.T) {
	f := mustField(t, secpP)
	for i := 0; i < 64; i++ {
		a, b := randElement(t, f), randElement(t, f)
		if got := f.Sub(f.Add(a, b), b); got.Cmp(a) != 0 {
			t.Fatalf("sub(add(a, b), b) = %x, want %x", got, a)
		}
	}
}

func TestSubNeverNegative(t *testing.T) {
	f := mustField(t, secpP)
	a := big.NewInt(1)
	b := new(big.Int).Sub(secpP, big.NewInt(1))

	got := f.Sub(a, b)
	assert.GreaterOrEqual(t, got.Sign(), 0, "result must not be negative")
	assert.Equal(t, int64(2), got.Int64())
}

func TestExpMatchesBigInt(t *testing.T) {
	f := mustField(t, secpP)
	for i := 0; i < 16; i++ {
		a, e := randElement(t, f), randElement(t, f)
		want := new(big.Int).Exp(a, e, secpP)
		assert.Equal(t, 0, f.Exp(a, e).Cmp(want))
	}
}

func TestSqrt(t *testing.T) {
	t.Run("p = 3 mod 4", func(t *testing.T) {
		f := mustField(t, secpP)
		for i := 0; i < 32; i++ {
			x := f.Square(randElement(t, f))
			r, ok := f.Sqrt(x)
			require.True(t, ok)
			assert.Equal(t, 0, f.Square(r).Cmp(x))
		}

		// -1 is a non-residue whenever p = 3 mod 4.
		minusOne := f.Neg(big.NewInt(1))
		r, ok := f.Sqrt(minusOne)
		assert.False(t, ok)
		assert.Nil(t, r)
		assert.False(t, f.IsSquare(minusOne))
	})

	t.Run("p = 1 mod 4", func(t *testing.T) {
		f := mustField(t, big.NewInt(13))
		residues := map[int64]bool{0: true, 1: true, 3: true, 4: true, 9: true, 10: true, 12: true}
		for x := int64(0); x < 13; x++ {
			r, ok := f.Sqrt(big.NewInt(x))
			assert.Equal(t, residues[x], ok, "x = %d", x)
			assert.Equal(t, residues[x], f.IsSquare(big.NewInt(x)), "x = %d", x)
			if ok {
				assert.Equal(t, x, f.Square(r).Int64())
			}
		}
	})

	t.Run("zero", func(t *testing.T) {
		f := mustField(t, secpP)
		r, ok := f.Sqrt(big.NewInt(0))
		require.True(t, ok)
		assert.Equal(t, 0, r.Sign())
	})
}

func TestInputsNotMutated(t *testing.T) {
	f := mustField(t, big.NewInt(23))
	a, b := big.NewInt(40), big.NewInt(-3)

	f.Add(a, b)
	f.Sub(a, b)
	f.Mul(a, b)
	f.Exp(a, big.NewInt(5))
	_, _ = f.Inv(a)
	_, _ = f.Div(a, b)
	f.Sqrt(a)

	assert.Equal(t, int64(40), a.Int64())
	assert.Equal(t, int64(-3), b.Int64())
}

func FuzzAddSub(f *testing.F) {
	f.Add([]byte{1}, []byte{2})
	f.Add([]byte{0xff, 0xff}, []byte{0})
	f.Add(make([]byte, 40), []byte{0x80})

	fld, err := New(secpP)
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, ab, bb []byte) {
		a := fld.Reduce(new(big.Int).SetBytes(ab))
		b := fld.Reduce(new(big.Int).SetBytes(bb))

		if got := fld.Sub(fld.Add(a, b), b); got.Cmp(a) != 0 {
			t.Fatalf("sub(add(a, b), b) = %x, want %x", got, a)
		}
		if got := fld.Add(fld.Sub(a, b), b); got.Cmp(a) != 0 {
			t.Fatalf("add(sub(a, b), b) = %x, want %x", got, a)
		}
		if fld.IsZero(b) {
			return
		}
		q, err := fld.Div(a, b)
		if err != nil {
			t.Fatalf("div: %v", err)
		}
		if got := fld.Mul(q, b); got.Cmp(a) != 0 {
			t.Fatalf("mul(div(a, b), b) = %x, want %x", got, a)
		}
	})
}
