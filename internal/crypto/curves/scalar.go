package curves

import (
	"math/big"
)

// ScalarMult returns k·p using double-and-add from the least significant bit.
// k = 0 yields the identity and a negative k multiplies -p by |k|.
//
// The running time depends on the bit pattern of k; this is not constant time.
func (c *Config) ScalarMult(p Point, k *big.Int) Point {
	if k.Sign() < 0 {
		return c.ScalarMult(c.Neg(p), new(big.Int).Neg(k))
	}

	result := Identity()
	current := c.reduce(p)
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = c.Add(result, current)
		}
		current = c.Double(current)
	}
	return result
}

// ScalarBaseMult returns k·G where G is the base point.
func (c *Config) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(c.g, k)
}
