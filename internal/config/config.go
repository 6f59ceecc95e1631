// Package config loads ecgen settings from a YAML file, ECGEN_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/smallyu/go-weierstrass/pkg/keys"
)

// EnvPrefix is the prefix of environment overrides, e.g. ECGEN_CURVE.
const EnvPrefix = "ECGEN"

// Output formats for generated keys.
const (
	FormatHex = "hex"
	FormatPEM = "pem"
)

// Config holds the resolved settings.
type Config struct {
	Curve     string         `mapstructure:"curve"`
	Count     int            `mapstructure:"count"`
	Workers   int            `mapstructure:"workers"`
	Format    string         `mapstructure:"format"`
	ByteOrder keys.ByteOrder `mapstructure:"byteOrder"`
	Log       Log            `mapstructure:"log"`
	Curves    []CurveSpec    `mapstructure:"curves"`
}

// Log configures the logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CurveSpec defines an additional curve by its hex constants. Aliases may be
// given as a list or as one comma separated string.
type CurveSpec struct {
	Name    string   `mapstructure:"name"`
	Aliases []string `mapstructure:"aliases"`
	A       string   `mapstructure:"a"`
	B       string   `mapstructure:"b"`
	P       string   `mapstructure:"p"`
	Gx      string   `mapstructure:"gx"`
	N       string   `mapstructure:"n"`
	OID     string   `mapstructure:"oid"`
	OddY    bool     `mapstructure:"oddY"`
}

// New returns a viper instance with defaults and environment bindings
// installed. Command line flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("curve", "secp256k1")
	v.SetDefault("count", 1)
	v.SetDefault("workers", 1)
	v.SetDefault("format", FormatHex)
	v.SetDefault("byteOrder", "big")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var c Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		byteOrderHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return errors.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Format {
	case FormatHex, FormatPEM:
	default:
		return errors.Errorf("unknown output format %q", c.Format)
	}
	seen := map[string]bool{}
	for i, spec := range c.Curves {
		if spec.Name == "" {
			return errors.Errorf("curves[%d]: missing name", i)
		}
		for _, name := range spec.names() {
			if name == "" {
				return errors.Errorf("curves[%d]: empty alias", i)
			}
			if seen[name] {
				return errors.Errorf("curves[%d]: duplicate curve %q", i, name)
			}
			seen[name] = true
		}
	}
	return nil
}

// ResolveCurve returns the configured curve called name or aliased as name,
// falling back to the built-in curves.
func (c *Config) ResolveCurve(name string) (*keys.Curve, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, spec := range c.Curves {
		for _, n := range spec.names() {
			if n == want {
				return spec.Build()
			}
		}
	}
	return keys.CurveByName(name)
}

// names returns the lower-cased name and aliases of s.
func (s CurveSpec) names() []string {
	names := []string{strings.ToLower(s.Name)}
	for _, a := range s.Aliases {
		names = append(names, strings.ToLower(strings.TrimSpace(a)))
	}
	return names
}

// Build constructs the curve described by s.
func (s CurveSpec) Build() (*keys.Curve, error) {
	var opts []keys.CurveOption
	if s.OID != "" {
		opts = append(opts, keys.WithOID(s.OID))
	}
	if s.OddY {
		opts = append(opts, keys.WithOddBaseY())
	}
	return keys.NewCurveFromHex(s.Name, s.A, s.B, s.P, s.Gx, s.N, opts...)
}

// ParseByteOrder accepts "big", "little", "big-endian" and "little-endian".
func ParseByteOrder(s string) (keys.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "big-endian", "be", "":
		return keys.BigEndian, nil
	case "little", "little-endian", "le":
		return keys.LittleEndian, nil
	}
	return 0, errors.Errorf("unknown byte order %q", s)
}

func byteOrderHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(keys.ByteOrder(0)) || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseByteOrder(data.(string))
}
