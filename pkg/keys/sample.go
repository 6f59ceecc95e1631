package keys

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxDraws bounds rejection sampling. Masking to the bit length of n keeps
// the acceptance probability of each draw close to one half (a quarter in the
// degenerate case n = 2), so a healthy source never gets close; reaching the
// bound means the source is broken.
const maxDraws = 1024

// SampleScalarBelow returns a uniformly distributed integer in [1, n-1],
// drawing candidates of n's bit width from rng until one falls in range.
func SampleScalarBelow(n *big.Int, rng io.Reader) (*big.Int, error) {
	return sampleScalarBelow(n, rng, zap.NewNop())
}

func sampleScalarBelow(n *big.Int, rng io.Reader, logger *zap.Logger) (*big.Int, error) {
	if rng == nil {
		return nil, ErrNilArgument
	}
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrapf(ErrInvalidOrder, "n = %v", n)
	}

	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8)
	defer func() {
		for i := range buf {
			buf[i] = 0
		}
	}()
	mask := byte(0xff >> uint(len(buf)*8-bits))

	for draw := 1; draw <= maxDraws; draw++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, errors.Wrap(err, "read random source")
		}
		buf[0] &= mask

		candidate := new(big.Int).SetBytes(buf)
		if candidate.Sign() > 0 && candidate.Cmp(n) < 0 {
			if draw > 1 {
				logger.Debug("scalar accepted after redraws", zap.Int("draws", draw))
			}
			return candidate, nil
		}
		logger.Debug("scalar candidate rejected", zap.Int("draw", draw), zap.Int("bits", bits))
	}

	return nil, errors.Wrapf(ErrSamplingExhausted, "after %d draws", maxDraws)
}
