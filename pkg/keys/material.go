package keys

import (
	"math/big"

	"github.com/pkg/errors"
)

// ByteOrder selects how fixed-width buffers are laid out.
type ByteOrder int

const (
	// BigEndian puts the most significant byte first, as SEC 1 and X9.62 do.
	BigEndian ByteOrder = iota
	// LittleEndian puts the least significant byte first.
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	}
	return "unknown"
}

// Material is the raw form of a key pair handed to encoders: the private
// scalar and both public coordinates as fixed-width buffers, plus the
// curve's object identifier. For 256-bit curves each buffer is 32 bytes.
type Material struct {
	Private []byte
	PublicX []byte
	PublicY []byte
	OID     string
	Order   ByteOrder
}

// Buffers returns the pair's key material in the requested byte order.
func (kp *KeyPair) Buffers(order ByteOrder) Material {
	return Material{
		Private: fixedBytes(kp.private, kp.curve.ScalarByteLen(), order),
		PublicX: fixedBytes(kp.public.X(), kp.curve.CoordinateByteLen(), order),
		PublicY: fixedBytes(kp.public.Y(), kp.curve.CoordinateByteLen(), order),
		OID:     kp.curve.OID(),
		Order:   order,
	}
}

// FromMaterial rebuilds a key pair from raw material, checking that the
// public coordinates match the private scalar. Material tagged with another
// curve's OID fails with ErrCurveMismatch; an empty OID on either side is
// not checked.
func FromMaterial(curve *Curve, m Material) (*KeyPair, error) {
	if curve == nil {
		return nil, ErrNilArgument
	}
	if m.OID != "" && curve.OID() != "" && m.OID != curve.OID() {
		return nil, errors.Wrapf(ErrCurveMismatch, "material for %s, curve %s is %s", m.OID, curve.Name(), curve.OID())
	}
	if m.Order != BigEndian && m.Order != LittleEndian {
		return nil, errors.Wrapf(ErrInvalidMaterial, "byte order %d", m.Order)
	}
	if len(m.Private) != curve.ScalarByteLen() ||
		len(m.PublicX) != curve.CoordinateByteLen() ||
		len(m.PublicY) != curve.CoordinateByteLen() {
		return nil, errors.Wrapf(ErrInvalidMaterial, "buffer lengths %d/%d/%d",
			len(m.Private), len(m.PublicX), len(m.PublicY))
	}

	kp, err := NewKeyPair(curve, fromFixedBytes(m.Private, m.Order))
	if err != nil {
		return nil, err
	}

	pub, err := curve.NewPoint(fromFixedBytes(m.PublicX, m.Order), fromFixedBytes(m.PublicY, m.Order))
	if err != nil {
		return nil, err
	}
	if !pub.Equal(kp.public) {
		return nil, ErrKeyMismatch
	}
	return kp, nil
}

func fixedBytes(v *big.Int, size int, order ByteOrder) []byte {
	buf := v.FillBytes(make([]byte, size))
	if order == LittleEndian {
		reverse(buf)
	}
	return buf
}

func fromFixedBytes(b []byte, order ByteOrder) *big.Int {
	if order == LittleEndian {
		tmp := make([]byte, len(b))
		copy(tmp, b)
		reverse(tmp)
		b = tmp
	}
	return new(big.Int).SetBytes(b)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
