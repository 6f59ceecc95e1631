package benchmark

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/keyenc"
	"github.com/smallyu/go-weierstrass/pkg/keys"
)

// randomScalar draws a scalar below the order of curve.
func randomScalar(b *testing.B, curve *keys.Curve) *big.Int {
	k, err := keys.SampleScalarBelow(curve.Order(), rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	return k
}

func BenchmarkScalarBaseMult(b *testing.B) {
	for _, curve := range []*keys.Curve{keys.Secp256k1(), keys.P256()} {
		b.Run(curve.Name(), func(b *testing.B) {
			k := randomScalar(b, curve)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				curve.ScalarBaseMult(k)
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	for _, curve := range []*keys.Curve{keys.Secp256k1(), keys.P256()} {
		b.Run(curve.Name(), func(b *testing.B) {
			gen, err := keys.NewGenerator(curve, rand.Reader)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := gen.Generate(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerateParallel(b *testing.B) {
	gen, err := keys.NewGenerator(keys.Secp256k1(), rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := gen.Generate(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkFieldOps(b *testing.B) {
	curve := keys.Secp256k1()
	f := curve.Field()
	x, y := randomScalar(b, curve), randomScalar(b, curve)

	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			f.Mul(x, y)
		}
	})
	b.Run("Inv", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := f.Inv(x); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("Sqrt", func(b *testing.B) {
		sq := f.Square(x)
		for i := 0; i < b.N; i++ {
			f.Sqrt(sq)
		}
	})
}

func BenchmarkSqrtTonelliShanks(b *testing.B) {
	// The Curve25519 group order is 1 mod 4.
	p, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	f, err := field.New(p)
	if err != nil {
		b.Fatal(err)
	}
	sq := f.Square(big.NewInt(0x1234567))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Sqrt(sq)
	}
}

func BenchmarkEncodePEM(b *testing.B) {
	kp, err := keys.Generate(keys.Secp256k1(), rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	m := kp.Buffers(keys.BigEndian)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keyenc.PrivateKeyToPEM(m); err != nil {
			b.Fatal(err)
		}
	}
}
