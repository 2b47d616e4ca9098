package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xor-shift/xoshiro-testgen/config"
	"github.com/xor-shift/xoshiro-testgen/server"
	"github.com/xor-shift/xoshiro-testgen/testgen"
	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

// nonEmpty drops the blank entry an empty ${variants} default decodes to.
func nonEmpty(list []string) []string {
	var ret []string
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

type GenCmd struct {
	Variants []string `name:"variant" short:"v" default:"${variants}" help:"Variants to generate fixtures for (see list)"`
	Kinds    []string `name:"kind" short:"k" default:"${kinds}" help:"Fixture kinds (next, jump)"`
	Tags     string   `name:"tags" short:"t" default:"${tags}" enum:"go,short" help:"Type labels in front of literals"`
	Out      string   `name:"out" short:"o" default:"${out}" help:"File to output to (templated over .Variant), - for stdout"`
}

func (cmd *GenCmd) Run(app *App) error {
	cfg := config.Config{
		Variants: nonEmpty(cmd.Variants),
		Kinds:    nonEmpty(cmd.Kinds),
		Tags:     cmd.Tags,
		Out:      cmd.Out,
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(cfg.Variants) == 0 {
		return errors.New("no variants selected (use --variant or TESTGEN_VARIANTS)")
	}

	tags, err := testgen.ParseTagStyle(cfg.Tags)
	if err != nil {
		return err
	}

	src, err := app.newSource()
	if err != nil {
		return err
	}

	gen := testgen.NewGenerator(src, tags)

	out, err := newOutputs(cfg.Out, app.stdout)
	if err != nil {
		return fmt.Errorf("creating the output filename template: %w", err)
	}
	defer out.Close()

	for _, name := range cfg.Variants {
		v, err := rng.Lookup(name)
		if err != nil {
			return err
		}

		for _, kind := range cfg.Kinds {
			if kind == config.KindJump && !v.CanJump() {
				app.log.Warnf("skipping jump fixtures for %s: no jump polynomials", v.Name)
				continue
			}

			w, fileName, err := out.For(v)
			if err != nil {
				return fmt.Errorf("opening output for %s: %w", v.Name, err)
			}

			if kind == config.KindNext {
				err = gen.GenNextTest(w, v)
			} else {
				err = gen.GenJumpTest(w, v)
			}
			if err != nil {
				return fmt.Errorf("writing %s fixtures for %s: %w", kind, v.Name, err)
			}

			app.log.Infof("run %s: %s %s fixtures -> %s", app.run, v.Name, kind, fileName)
		}
	}

	return out.Close()
}

type ListCmd struct{}

func (cmd *ListCmd) Run(app *App) error {
	for _, v := range rng.All() {
		jump := "-"
		if v.CanJump() {
			jump = "jump"
		}

		if _, err := fmt.Fprintf(app.stdout, "%-16s %2d-bit x%d  %s\n", v.Name, v.WordBits, v.Arity, jump); err != nil {
			return err
		}
	}

	return nil
}

type VerifyCmd struct {
	Files []string `arg:"" help:"Fixture files to verify"`
}

func (cmd *VerifyCmd) Run(app *App) error {
	for _, path := range cmd.Files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		sections, err := testgen.Parse(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if err = testgen.Verify(sections); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		records := 0
		for _, s := range sections {
			records += len(s.Next) + len(s.Jump)
		}

		app.log.Infof("%s: %d sections, %d records OK", path, len(sections), records)
	}

	return nil
}

type ServeCmd struct {
	Listen string `name:"listen" short:"l" default:"${listen}" help:"Address to listen on"`
	Tags   string `name:"tags" short:"t" default:"${tags}" enum:"go,short" help:"Default type labels"`
}

func (cmd *ServeCmd) Run(app *App) error {
	tags, err := testgen.ParseTagStyle(cmd.Tags)
	if err != nil {
		return err
	}

	app.log.Infof("run %s: serving fixtures on %s", app.run, cmd.Listen)

	return server.New(tags, app.logLevel, app.newSource).Listen(cmd.Listen)
}
