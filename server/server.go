package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"github.com/xor-shift/xoshiro-testgen/config"
	"github.com/xor-shift/xoshiro-testgen/testgen"
	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

const RunHeader = "X-Fixture-Run"

// VariantInfo is the JSON shape of GET /variants.
type VariantInfo struct {
	Name     string `json:"name"`
	WordBits int    `json:"wordBits"`
	Arity    int    `json:"arity"`
	Jump     bool   `json:"jump"`
}

type Server struct {
	app       *iris.Application
	tags      testgen.TagStyle
	newSource func() (testgen.Source, error)
}

// New builds the application. newSource is called once per fixture request
// so requests never share generator state; nil means testgen.NewEntropySource.
func New(tags testgen.TagStyle, logLevel string, newSource func() (testgen.Source, error)) *Server {
	if newSource == nil {
		newSource = testgen.NewEntropySource
	}

	s := &Server{
		app:       iris.New(),
		tags:      tags,
		newSource: newSource,
	}

	s.app.Logger().SetLevel(logLevel)

	s.app.Get("/variants", s.variants)
	s.app.Get("/fixtures/{variant:string}/{kind:string}", s.fixtures)

	return s
}

func (s *Server) App() *iris.Application {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) variants(ctx iris.Context) {
	all := rng.All()
	infos := make([]VariantInfo, len(all))

	for i, v := range all {
		infos[i] = VariantInfo{
			Name:     v.Name,
			WordBits: v.WordBits,
			Arity:    v.Arity,
			Jump:     v.CanJump(),
		}
	}

	_, _ = ctx.JSON(infos)
}

func (s *Server) fixtures(ctx iris.Context) {
	v, err := rng.Lookup(ctx.Params().Get("variant"))
	if err != nil {
		ctx.StatusCode(http.StatusNotFound)
		_, _ = ctx.Text("%s", err)
		return
	}

	tags := s.tags
	if name := ctx.URLParam("tags"); name != "" {
		if tags, err = testgen.ParseTagStyle(name); err != nil {
			ctx.StatusCode(http.StatusBadRequest)
			_, _ = ctx.Text("%s", err)
			return
		}
	}

	kind := ctx.Params().Get("kind")
	if kind != config.KindNext && kind != config.KindJump {
		ctx.StatusCode(http.StatusBadRequest)
		_, _ = ctx.Text("unknown fixture kind %q", kind)
		return
	}

	src, err := s.newSource()
	if err != nil {
		s.app.Logger().Errorf("fixture source for %s: %s", ctx.RemoteAddr(), err)
		ctx.StatusCode(http.StatusInternalServerError)
		return
	}

	run := uuid.New()
	gen := testgen.NewGenerator(src, tags)

	var buf bytes.Buffer
	if kind == config.KindNext {
		err = gen.GenNextTest(&buf, v)
	} else {
		err = gen.GenJumpTest(&buf, v)
	}

	if errors.Is(err, rng.ErrNoJump) {
		ctx.StatusCode(http.StatusUnprocessableEntity)
		_, _ = ctx.Text("%s", err)
		return
	} else if err != nil {
		s.app.Logger().Errorf("generating %s %s fixtures: %s", v.Name, kind, err)
		ctx.StatusCode(http.StatusInternalServerError)
		return
	}

	s.app.Logger().Infof("run %s: %s %s fixtures for %s", run, v.Name, kind, ctx.RemoteAddr())

	ctx.Header(RunHeader, run.String())
	ctx.ContentType("text/plain")
	_, _ = ctx.Write(buf.Bytes())
}
