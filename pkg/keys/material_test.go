package keys

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffers(t *testing.T) {
	curve := Secp256k1()
	kp, err := NewKeyPair(curve, big.NewInt(2))
	require.NoError(t, err)

	be := kp.Buffers(BigEndian)
	require.Len(t, be.Private, 32)
	require.Len(t, be.PublicX, 32)
	require.Len(t, be.PublicY, 32)
	assert.Equal(t, "1.3.132.0.10", be.OID)
	assert.Equal(t, byte(2), be.Private[31])
	assert.Equal(t, make([]byte, 31), be.Private[:31])
	assert.Equal(t, "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5", new(big.Int).SetBytes(be.PublicX).Text(16))

	le := kp.Buffers(LittleEndian)
	assert.Equal(t, byte(2), le.Private[0])
	for i := range be.PublicX {
		assert.Equal(t, be.PublicX[i], le.PublicX[31-i])
		assert.Equal(t, be.PublicY[i], le.PublicY[31-i])
	}
}

func TestBuffersPadShortValues(t *testing.T) {
	curve := Secp256k1()

	// Find a key whose public x has a leading zero byte so padding matters.
	k := big.NewInt(1)
	for {
		kp, err := NewKeyPair(curve, k)
		require.NoError(t, err)
		if kp.Public().X().BitLen() <= 248 {
			m := kp.Buffers(BigEndian)
			assert.Len(t, m.PublicX, 32)
			assert.Equal(t, byte(0), m.PublicX[0])
			return
		}
		k.Add(k, big.NewInt(1))
	}
}

func TestFromMaterialRoundTrip(t *testing.T) {
	for _, order := range []ByteOrder{BigEndian, LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			kp, err := Generate(P256(), rand.Reader)
			require.NoError(t, err)

			back, err := FromMaterial(P256(), kp.Buffers(order))
			require.NoError(t, err)
			assert.Equal(t, 0, back.Private().Cmp(kp.Private()))
			assert.True(t, back.Public().Equal(kp.Public()))
		})
	}
}

func TestFromMaterialRejects(t *testing.T) {
	curve := Secp256k1()
	kp, err := Generate(curve, rand.Reader)
	require.NoError(t, err)
	other, err := Generate(curve, rand.Reader)
	require.NoError(t, err)

	good := kp.Buffers(BigEndian)

	short := good
	short.Private = good.Private[1:]
	_, err = FromMaterial(curve, short)
	assert.True(t, errors.Is(err, ErrInvalidMaterial))

	badOrder := good
	badOrder.Order = ByteOrder(9)
	_, err = FromMaterial(curve, badOrder)
	assert.True(t, errors.Is(err, ErrInvalidMaterial))

	mismatched := good
	om := other.Buffers(BigEndian)
	mismatched.PublicX, mismatched.PublicY = om.PublicX, om.PublicY
	_, err = FromMaterial(curve, mismatched)
	assert.True(t, errors.Is(err, ErrKeyMismatch))

	offCurve := good
	offCurve.PublicY = bytes.Repeat([]byte{0x01}, 32)
	_, err = FromMaterial(curve, offCurve)
	assert.True(t, errors.Is(err, ErrInvalidCurvePoint))

	zero := good
	zero.Private = make([]byte, 32)
	_, err = FromMaterial(curve, zero)
	assert.True(t, errors.Is(err, ErrInvalidScalar))
}

func TestByteOrderString(t *testing.T) {
	assert.Equal(t, "big-endian", BigEndian.String())
	assert.Equal(t, "little-endian", LittleEndian.String())
	assert.Equal(t, "unknown", ByteOrder(7).String())
}

func TestFromMaterialCurveMismatch(t *testing.T) {
	kp, err := NewKeyPair(P256(), big.NewInt(7))
	require.NoError(t, err)
	m := kp.Buffers(BigEndian)

	_, err = FromMaterial(Secp256k1(), m)
	assert.True(t, errors.Is(err, ErrCurveMismatch), "got %v", err)

	// an untagged buffer is checked only through the public point, which is
	// not on secp256k1
	m.OID = ""
	back, err := FromMaterial(P256(), m)
	require.NoError(t, err)
	assert.True(t, back.Public().Equal(kp.Public()))

	_, err = FromMaterial(Secp256k1(), m)
	assert.True(t, errors.Is(err, ErrInvalidCurvePoint), "got %v", err)
}
