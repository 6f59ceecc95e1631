// Package keyenc encodes raw elliptic-curve key material as SEC 1, PKCS#8 and
// PKIX structures, DER or PEM wrapped.
//
// It works purely from the fixed-width buffers and the object identifier in
// keys.Material, so any curve with a registered OID can be encoded.
package keyenc

import (
	"encoding/asn1"
	"encoding/pem"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/keys"
)

type pkcs8Info struct {
	Version             int
	PrivateKeyAlgorithm []asn1.ObjectIdentifier
	PrivateKey          []byte
}

type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

type subjectPublicKeyInfo struct {
	Algorithm []asn1.ObjectIdentifier
	PublicKey asn1.BitString
}

var oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

const (
	pemPrivateKey   = "PRIVATE KEY"
	pemECPrivateKey = "EC PRIVATE KEY"
	pemPublicKey    = "PUBLIC KEY"

	// uncompressed point prefix, SEC 1 section 2.3.3
	pointUncompressed = 0x04
)

// ParseOID converts a dotted object identifier such as "1.3.132.0.10".
func ParseOID(s string) (asn1.ObjectIdentifier, error) {
	if s == "" {
		return nil, errors.New("empty object identifier")
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, errors.Errorf("object identifier %q needs at least two arcs", s)
	}
	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return nil, errors.Errorf("invalid arc %q in object identifier %q", p, s)
		}
		oid[i] = v
	}
	return oid, nil
}

func checkMaterial(m keys.Material) (asn1.ObjectIdentifier, error) {
	if m.Order != keys.BigEndian {
		return nil, errors.Errorf("key material must be big-endian, got %s", m.Order)
	}
	if len(m.Private) == 0 {
		return nil, errors.New("invalid key material. Private scalar must be different from nil")
	}
	if len(m.PublicX) == 0 || len(m.PublicX) != len(m.PublicY) {
		return nil, errors.New("invalid key material. Public coordinates must be set and of equal width")
	}
	oid, err := ParseOID(m.OID)
	if err != nil {
		return nil, errors.WithMessage(err, "curve identifier")
	}
	return oid, nil
}

// marshalPoint returns the uncompressed encoding 0x04 || x || y.
func marshalPoint(x, y []byte) []byte {
	out := make([]byte, 0, 1+len(x)+len(y))
	out = append(out, pointUncompressed)
	out = append(out, x...)
	return append(out, y...)
}

func unmarshalPoint(b []byte) (x, y []byte, err error) {
	if len(b) < 3 || len(b)%2 != 1 || b[0] != pointUncompressed {
		return nil, nil, errors.New("public key is not an uncompressed point")
	}
	w := (len(b) - 1) / 2
	return b[1 : 1+w], b[1+w:], nil
}

// MarshalSEC1 returns the RFC 5915 ECPrivateKey DER encoding, carrying the
// named curve and the public point.
func MarshalSEC1(m keys.Material) ([]byte, error) {
	oid, err := checkMaterial(m)
	if err != nil {
		return nil, err
	}

	der, err := asn1.Marshal(ecPrivateKey{
		Version:       1,
		PrivateKey:    m.Private,
		NamedCurveOID: oid,
		PublicKey:     asn1.BitString{Bytes: marshalPoint(m.PublicX, m.PublicY), BitLength: 8 * (1 + 2*len(m.PublicX))},
	})
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling EC key to asn1")
	}
	return der, nil
}

// SEC1ToPEM wraps MarshalSEC1 in an "EC PRIVATE KEY" block.
func SEC1ToPEM(m keys.Material) ([]byte, error) {
	der, err := MarshalSEC1(m)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemECPrivateKey, Bytes: der}), nil
}

// MarshalPKCS8 returns the PKCS#8 DER encoding of the private key.
func MarshalPKCS8(m keys.Material) ([]byte, error) {
	oid, err := checkMaterial(m)
	if err != nil {
		return nil, err
	}

	// the curve travels in the algorithm parameters, omitted from the inner key
	inner, err := asn1.Marshal(ecPrivateKey{
		Version:    1,
		PrivateKey: m.Private,
		PublicKey:  asn1.BitString{Bytes: marshalPoint(m.PublicX, m.PublicY), BitLength: 8 * (1 + 2*len(m.PublicX))},
	})
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling EC key to asn1")
	}

	der, err := asn1.Marshal(pkcs8Info{
		Version:             0,
		PrivateKeyAlgorithm: []asn1.ObjectIdentifier{oidPublicKeyECDSA, oid},
		PrivateKey:          inner,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling PKCS#8 wrapper")
	}
	return der, nil
}

// PrivateKeyToPEM returns the PKCS#8 "PRIVATE KEY" PEM block.
func PrivateKeyToPEM(m keys.Material) ([]byte, error) {
	der, err := MarshalPKCS8(m)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPrivateKey, Bytes: der}), nil
}

// MarshalPKIX returns the SubjectPublicKeyInfo DER encoding of the public key.
func MarshalPKIX(m keys.Material) ([]byte, error) {
	oid, err := checkMaterial(m)
	if err != nil {
		return nil, err
	}
	point := marshalPoint(m.PublicX, m.PublicY)
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: []asn1.ObjectIdentifier{oidPublicKeyECDSA, oid},
		PublicKey: asn1.BitString{Bytes: point, BitLength: 8 * len(point)},
	})
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling public key to asn1")
	}
	return der, nil
}

// PublicKeyToPEM returns the PKIX "PUBLIC KEY" PEM block.
func PublicKeyToPEM(m keys.Material) ([]byte, error) {
	der, err := MarshalPKIX(m)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: der}), nil
}

// PEMToPrivateKey parses a PKCS#8 or SEC 1 PEM private key back into
// big-endian key material. The public buffers are those stored in the
// encoding; callers should check them with keys.FromMaterial.
func PEMToPrivateKey(raw []byte) (keys.Material, error) {
	if len(raw) == 0 {
		return keys.Material{}, errors.New("invalid PEM. It must be different from nil")
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return keys.Material{}, errors.Errorf("failed decoding PEM. Block must be different from nil [% x]", raw)
	}

	switch block.Type {
	case pemPrivateKey:
		var info pkcs8Info
		if _, err := asn1.Unmarshal(block.Bytes, &info); err != nil {
			return keys.Material{}, errors.Wrap(err, "failed parsing PKCS#8")
		}
		if len(info.PrivateKeyAlgorithm) != 2 || !info.PrivateKeyAlgorithm[0].Equal(oidPublicKeyECDSA) {
			return keys.Material{}, errors.New("PKCS#8 key is not an EC key")
		}
		return parseECPrivateKey(info.PrivateKey, info.PrivateKeyAlgorithm[1])
	case pemECPrivateKey:
		return parseECPrivateKey(block.Bytes, nil)
	default:
		return keys.Material{}, errors.Errorf("unexpected PEM block type %q", block.Type)
	}
}

func parseECPrivateKey(der []byte, curveOID asn1.ObjectIdentifier) (keys.Material, error) {
	var k ecPrivateKey
	if _, err := asn1.Unmarshal(der, &k); err != nil {
		return keys.Material{}, errors.Wrap(err, "failed parsing EC private key")
	}
	if k.Version != 1 {
		return keys.Material{}, errors.Errorf("unknown EC private key version %d", k.Version)
	}
	if curveOID == nil {
		curveOID = k.NamedCurveOID
	}
	if len(curveOID) == 0 {
		return keys.Material{}, errors.New("EC private key does not name its curve")
	}

	x, y, err := unmarshalPoint(k.PublicKey.RightAlign())
	if err != nil {
		return keys.Material{}, err
	}
	return keys.Material{
		Private: k.PrivateKey,
		PublicX: x,
		PublicY: y,
		OID:     curveOID.String(),
		Order:   keys.BigEndian,
	}, nil
}

// PEMToPublicKey parses a PKIX "PUBLIC KEY" block into big-endian public
// coordinates and the curve OID. The private buffer of the result is empty.
func PEMToPublicKey(raw []byte) (keys.Material, error) {
	if len(raw) == 0 {
		return keys.Material{}, errors.New("invalid PEM. It must be different from nil")
	}
	block, _ := pem.Decode(raw)
	if block == nil || block.Type != pemPublicKey {
		return keys.Material{}, errors.Errorf("failed decoding public key PEM [% x]", raw)
	}

	var spki subjectPublicKeyInfo
	if _, err := asn1.Unmarshal(block.Bytes, &spki); err != nil {
		return keys.Material{}, errors.Wrap(err, "failed parsing PKIX")
	}
	if len(spki.Algorithm) != 2 || !spki.Algorithm[0].Equal(oidPublicKeyECDSA) {
		return keys.Material{}, errors.New("PKIX key is not an EC key")
	}

	x, y, err := unmarshalPoint(spki.PublicKey.RightAlign())
	if err != nil {
		return keys.Material{}, err
	}
	return keys.Material{
		PublicX: x,
		PublicY: y,
		OID:     spki.Algorithm[1].String(),
		Order:   keys.BigEndian,
	}, nil
}
