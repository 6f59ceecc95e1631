// Command ecgen generates elliptic-curve key pairs and demonstrates the
// underlying prime field arithmetic.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/logging"
)

// app carries the state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
	out     io.Writer
	errOut  io.Writer
	rng     io.Reader
}

func main() {
	cmd := newRootCmd(&app{out: os.Stdout, errOut: os.Stderr, rng: rand.Reader})

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if cmd.ExecuteContext(context.Background()) != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	a.v = config.New()

	root := &cobra.Command{
		Use:           "ecgen",
		Short:         "Short-Weierstrass key generation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json, logfmt)")
	bindFlag(a.v, "log.level", flags, "log-level")
	bindFlag(a.v, "log.format", flags, "log-format")

	root.AddCommand(generateCmd(a))
	root.AddCommand(curvesCmd(a))
	root.AddCommand(fieldCmd(a))
	return root
}

// bindFlag binds the flag called name to key. The flags are fixed at build
// time, so a failed binding is a programming error.
func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	f := flags.Lookup(name)
	if f == nil {
		panic(fmt.Sprintf("ecgen: binding %s: no flag --%s", key, name))
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(errors.WithMessagef(err, "ecgen: binding %s to --%s", key, name))
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: a.errOut,
	})
	if err != nil {
		return err
	}
	a.logger = logger.Named("ecgen")
	return nil
}
