package main

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/keys"
)

// defaultDemoModulus is 2^256 - 189, the largest 256-bit prime.
const defaultDemoModulus = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff43"

func fieldCmd(a *app) *cobra.Command {
	var modulus string

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Demonstrate arithmetic on two random field elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fieldDemo(modulus)
		},
	}
	cmd.Flags().StringVar(&modulus, "modulus", defaultDemoModulus, "odd prime modulus in hex")
	return cmd
}

func (a *app) fieldDemo(modulus string) error {
	p, err := curves.ParseConstant(modulus)
	if err != nil {
		return err
	}
	f, err := field.New(p)
	if err != nil {
		return err
	}

	x, err := keys.SampleScalarBelow(p, a.rng)
	if err != nil {
		return errors.WithMessage(err, "sampling a")
	}
	y, err := keys.SampleScalarBelow(p, a.rng)
	if err != nil {
		return errors.WithMessage(err, "sampling b")
	}
	a.logger.Debug("sampled field elements", zap.Int("bits", f.BitSize()))

	inv, err := f.Inv(x)
	if err != nil {
		return err
	}
	quo, err := f.Div(x, y)
	if err != nil {
		return err
	}

	w := a.out
	fmt.Fprintf(w, "p       = %s\n", hexOf(p))
	fmt.Fprintf(w, "a       = %s\n", hexOf(x))
	fmt.Fprintf(w, "b       = %s\n", hexOf(y))
	fmt.Fprintf(w, "a - b   = %s\n", hexOf(f.Sub(x, y)))
	fmt.Fprintf(w, "a + b   = %s\n", hexOf(f.Add(x, y)))
	fmt.Fprintf(w, "a * b   = %s\n", hexOf(f.Mul(x, y)))
	fmt.Fprintf(w, "a^-1    = %s\n", hexOf(inv))
	fmt.Fprintf(w, "a / b   = %s\n", hexOf(quo))
	if r, ok := f.Sqrt(x); ok {
		fmt.Fprintf(w, "sqrt(a) = %s\n", hexOf(r))
	} else {
		fmt.Fprintln(w, "sqrt(a) = none")
	}
	return nil
}

func hexOf(v *big.Int) string {
	return fmt.Sprintf("%#x", v)
}
