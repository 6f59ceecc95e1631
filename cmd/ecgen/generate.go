package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/keyenc"
	"github.com/smallyu/go-weierstrass/pkg/keys"
)

func generateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key pairs",
		Long: `Generate key pairs on a built-in or configured curve.

All workers share one curve and draw from the system's secure random source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("curve", "", "curve name")
	flags.Int("count", 0, "number of key pairs")
	flags.Int("workers", 0, "number of concurrent generators")
	flags.String("format", "", "output format (hex, pem)")
	flags.String("byte-order", "", "byte order of hex output (big, little)")
	bindFlag(a.v, "curve", flags, "curve")
	bindFlag(a.v, "count", flags, "count")
	bindFlag(a.v, "workers", flags, "workers")
	bindFlag(a.v, "format", flags, "format")
	bindFlag(a.v, "byteOrder", flags, "byte-order")

	return cmd
}

func (a *app) generate(cmd *cobra.Command) error {
	cfg := a.cfg
	if cfg.Format == config.FormatPEM && cfg.ByteOrder != keys.BigEndian {
		return errors.New("pem output requires big-endian byte order")
	}

	curve, err := cfg.ResolveCurve(cfg.Curve)
	if err != nil {
		return err
	}
	gen, err := keys.NewGenerator(curve, a.rng, keys.WithLogger(a.logger))
	if err != nil {
		return err
	}

	a.logger.Info("generating key pairs",
		zap.String("curve", curve.Name()),
		zap.Int("count", cfg.Count),
		zap.Int("workers", cfg.Workers),
	)

	pairs := make([]*keys.KeyPair, cfg.Count)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)
	for i := range pairs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			kp, err := gen.Generate()
			if err != nil {
				return errors.WithMessagef(err, "key pair %d", i)
			}
			pairs[i] = kp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, kp := range pairs {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		if err := writeKeyPair(a.out, kp, cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeKeyPair(w io.Writer, kp *keys.KeyPair, cfg *config.Config) error {
	m := kp.Buffers(cfg.ByteOrder)

	if cfg.Format == config.FormatPEM {
		priv, err := keyenc.PrivateKeyToPEM(m)
		if err != nil {
			return err
		}
		pub, err := keyenc.PublicKeyToPEM(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s%s", priv, pub)
		return err
	}

	_, err := fmt.Fprintf(w, "curve: %s\noid: %s\nbyteOrder: %s\nprivate: %s\npublic.x: %s\npublic.y: %s\n",
		kp.Curve().Name(), m.OID, m.Order,
		hex.EncodeToString(m.Private),
		hex.EncodeToString(m.PublicX),
		hex.EncodeToString(m.PublicY),
	)
	return err
}
