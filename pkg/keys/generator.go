package keys

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Generator produces key pairs on one curve from one random source.
//
// A Generator is safe for concurrent use when its random source is; the
// crypto/rand Reader is.
type Generator struct {
	curve  *Curve
	rng    io.Reader
	logger *zap.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger used for sampling diagnostics. Only debug level
// records are written, and never any scalar material.
func WithLogger(logger *zap.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a generator for curve reading randomness from rng.
func NewGenerator(curve *Curve, rng io.Reader, opts ...GeneratorOption) (*Generator, error) {
	if curve == nil || rng == nil {
		return nil, ErrNilArgument
	}

	g := &Generator{
		curve:  curve,
		rng:    rng,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("curve", curve.Name()))
	return g, nil
}

// Curve returns the generator's curve.
func (g *Generator) Curve() *Curve {
	return g.curve
}

// SampleScalar draws a private scalar in [1, n-1].
func (g *Generator) SampleScalar() (*big.Int, error) {
	return sampleScalarBelow(g.curve.Order(), g.rng, g.logger)
}

// Generate draws a private scalar and derives its public point.
func (g *Generator) Generate() (*KeyPair, error) {
	k, err := g.SampleScalar()
	if err != nil {
		return nil, errors.WithMessage(err, "generate key pair")
	}

	kp, err := NewKeyPair(g.curve, k)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("generated key pair", zap.String("publicX", kp.public.X().Text(16)))
	return kp, nil
}
