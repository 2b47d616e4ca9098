package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

const stdoutName = "-"

// outputs hands out one writer per rendered file name, so a template without
// {{.Variant}} collects every variant into a single file.
type outputs struct {
	tmpl   *template.Template
	stdout io.Writer
	files  map[string]*os.File
}

func newOutputs(pattern string, stdout io.Writer) (*outputs, error) {
	o := &outputs{
		stdout: stdout,
		files:  map[string]*os.File{},
	}

	if pattern == stdoutName {
		return o, nil
	}

	var err error
	if o.tmpl, err = template.New("out").Parse(pattern); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *outputs) For(v *rng.Variant) (io.Writer, string, error) {
	if o.tmpl == nil {
		return o.stdout, stdoutName, nil
	}

	nameBuf := bytes.Buffer{}

	templateArguments := struct {
		Variant  string
		WordBits int
		Arity    int
	}{
		Variant:  v.Name,
		WordBits: v.WordBits,
		Arity:    v.Arity,
	}

	if err := o.tmpl.Execute(&nameBuf, templateArguments); err != nil {
		return nil, "", err
	}

	name := nameBuf.String()
	if name == stdoutName {
		return o.stdout, name, nil
	}

	if f, ok := o.files[name]; ok {
		return f, name, nil
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", err
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, "", err
	}

	o.files[name] = f
	return f, name, nil
}

func (o *outputs) Close() error {
	var first error

	for name, f := range o.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(o.files, name)
	}

	return first
}
