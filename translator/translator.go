package translator

import (
	"context"
	"fmt"
	"log/slog"

	gst "github.com/richinsley/goshadertranslator"
)

// OutputVersion is the #version of the desktop GLSL the translator emits.
const OutputVersion = 410

// Result is a translated fragment stage together with the names the
// translator gave to the user's identifiers.
type Result struct {
	Code  string
	Names map[string]string
}

// MappedName returns the translated name for name, or name itself when the
// translator did not report it.
func (r *Result) MappedName(name string) string {
	if r == nil {
		return name
	}
	if m, ok := r.Names[name]; ok && m != "" {
		return m
	}
	return name
}

// VaryingName guesses the translated name of a stage input that is not in
// the variable table. The translator prefixes user identifiers with _u.
func (r *Result) VaryingName(name string) string {
	if m, ok := r.Names[name]; ok && m != "" {
		return m
	}
	return "_u" + name
}

type Translator struct {
	gst *gst.ShaderTranslator
}

// New starts the translator runtime. It is comparatively slow, so it is only
// created when an ES shader is actually loaded.
func New(ctx context.Context) (*Translator, error) {
	t, err := gst.NewShaderTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	return &Translator{gst: t}, nil
}

// TranslateFragment converts a GLSL ES 3.00 fragment stage to desktop GLSL.
func (t *Translator) TranslateFragment(source string) (*Result, error) {
	sh, err := t.gst.TranslateShader(source, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}
	names := mappedNames(sh.Variables)
	slog.Debug("translated fragment shader", "variables", len(names))
	return &Result{Code: sh.Code, Names: names}, nil
}

func mappedNames(vars map[string]gst.ShaderVariable) map[string]string {
	names := make(map[string]string, len(vars))
	for name, v := range vars {
		names[name] = v.MappedName
	}
	return names
}
