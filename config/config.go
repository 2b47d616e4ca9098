package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"

	"github.com/xor-shift/xoshiro-testgen/testgen"
	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

const (
	EnvPrefix = "TESTGEN_"

	KindNext = "next"
	KindJump = "jump"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Variants has no default; what to generate is always chosen explicitly.
	Variants []string `mapstructure:"TESTGEN_VARIANTS"`
	Kinds    []string `mapstructure:"TESTGEN_KINDS"`
	Tags     string   `mapstructure:"TESTGEN_TAGS"`
	// Out is "-" for stdout or a text/template over {{.Variant}}.
	Out      string `mapstructure:"TESTGEN_OUT"`
	Listen   string `mapstructure:"TESTGEN_LISTEN"`
	LogLevel string `mapstructure:"TESTGEN_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Kinds:    []string{KindNext, KindJump},
		Tags:     "go",
		Out:      "-",
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Load merges the given .env files (missing ones are skipped, later files win)
// with TESTGEN_* variables from the process environment, which win over
// everything, and decodes the result on top of Default().
func Load(paths ...string) (Config, error) {
	merged := map[string]string{}

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}

		values, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}

		for k, v := range values {
			merged[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, EnvPrefix) {
			continue
		}
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}

	cfg := Default()
	if err := Decode(merged, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode overlays the keys present in values onto cfg. List keys are comma
// separated.
func Decode(values map[string]string, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}

	if err = decoder.Decode(values); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	cfg.Variants = trimAll(cfg.Variants)
	cfg.Kinds = trimAll(cfg.Kinds)

	return nil
}

func trimAll(list []string) []string {
	ret := list[:0]
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

func (c Config) Validate() error {
	for _, name := range c.Variants {
		if _, err := rng.Lookup(name); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalid, err)
		}
	}

	for _, kind := range c.Kinds {
		if kind != KindNext && kind != KindJump {
			return fmt.Errorf("%w: unknown fixture kind %q (expected %s or %s)", ErrInvalid, kind, KindNext, KindJump)
		}
	}

	if _, err := testgen.ParseTagStyle(c.Tags); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	if c.Out == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalid)
	}

	return nil
}
