package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/kataras/golog"

	"github.com/xor-shift/xoshiro-testgen/config"
	"github.com/xor-shift/xoshiro-testgen/testgen"
)

type CLI struct {
	LogLevel string `name:"log-level" default:"${log_level}" enum:"debug,info,warn,error,disable" help:"Log level (logs go to stderr)"`

	Gen    GenCmd    `cmd:"" default:"1" help:"Generate fixtures"`
	List   ListCmd   `cmd:"" help:"List generator variants"`
	Verify VerifyCmd `cmd:"" help:"Replay fixture files against the generators"`
	Serve  ServeCmd  `cmd:"" help:"Serve freshly generated fixtures over HTTP"`
}

// App is what every command runs against.
type App struct {
	log       *golog.Logger
	run       uuid.UUID
	logLevel  string
	stdout    io.Writer
	newSource func() (testgen.Source, error)
}

func vars(cfg config.Config) kong.Vars {
	return kong.Vars{
		"variants":  strings.Join(cfg.Variants, ","),
		"kinds":     strings.Join(cfg.Kinds, ","),
		"tags":      cfg.Tags,
		"out":       cfg.Out,
		"listen":    cfg.Listen,
		"log_level": cfg.LogLevel,
	}
}

func main() {
	logger := golog.New().SetOutput(os.Stderr)

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatalf("loading config failed: %s", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fixturegen"),
		kong.Description("Generates xoshiro/xoroshiro test-vector fixtures."),
		kong.UsageOnError(),
		vars(cfg))

	logger.SetLevel(cli.LogLevel)

	app := &App{
		log:       logger,
		run:       uuid.New(),
		logLevel:  cli.LogLevel,
		stdout:    os.Stdout,
		newSource: testgen.NewEntropySource,
	}

	logger.Debugf("run %s: %s", app.run, ctx.Command())

	ctx.FatalIfErrorf(ctx.Run(app))
}
