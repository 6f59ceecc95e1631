package curves

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Object identifiers of the built-in curves.
const (
	OIDSecp256k1 = "1.3.132.0.10"
	OIDP256      = "1.2.840.10045.3.1.7"
)

var (
	s256Once sync.Once
	s256     *Config

	p256Once sync.Once
	p256     *Config
)

// Secp256k1 returns the SEC 2 curve y² = x³ + 7 used by Bitcoin. The value is
// built on first use and shared afterwards.
func Secp256k1() *Config {
	s256Once.Do(func() {
		s256 = mustHex(NewConfigFromHex(
			"secp256k1",
			"0",
			"7",
			"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
			"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
			WithOID(OIDSecp256k1),
		))
	})
	return s256
}

// P256 returns NIST P-256 (secp256r1). Its published generator has an odd
// y-coordinate.
func P256() *Config {
	p256Once.Do(func() {
		p256 = mustHex(NewConfigFromHex(
			"P-256",
			"-3",
			"5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
			"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
			"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
			"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
			WithOID(OIDP256),
			WithOddBaseY(),
		))
	})
	return p256
}

var builtins = map[string]func() *Config{
	"secp256k1":  Secp256k1,
	"p-256":      P256,
	"p256":       P256,
	"secp256r1":  P256,
	"prime256v1": P256,
}

// ByName returns the built-in curve with the given name. Lookups are case
// insensitive and accept the common aliases of P-256.
func ByName(name string) (*Config, error) {
	ctor, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", name)
	}
	return ctor(), nil
}

// Names lists the canonical names of the built-in curves.
func Names() []string {
	seen := map[string]bool{}
	var names []string
	for _, ctor := range builtins {
		n := ctor().Name()
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func mustHex(c *Config, err error) *Config {
	if err != nil {
		panic("curves: built-in curve: " + err.Error())
	}
	return c
}
