package options

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DialectGLSL = "glsl" // desktop GLSL, used verbatim
	DialectES   = "es"   // GLSL ES 3.00 / WebGL2, translated before linking
)

// ShaderOptions holds everything the harness needs to open a window and build
// its single pipeline. Zero values are never meaningful; start from Default.
type ShaderOptions struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	GLMajor      int    `yaml:"gl_major"`
	GLMinor      int    `yaml:"gl_minor"`
	CoreProfile  bool   `yaml:"core_profile"`
	ShaderPath   string `yaml:"shader"`
	Dialect      string `yaml:"dialect"`
	TexturePath  string `yaml:"texture"`
	SmoothTex    bool   `yaml:"smooth"`
	DrawsPerLoop int    `yaml:"draws_per_frame"`

	// Command-line only.
	ConfigPath string `yaml:"-"`
	Verbose    bool   `yaml:"-"`
	Check      bool   `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *ShaderOptions {
	return &ShaderOptions{
		Title:        "Shadertoy",
		Width:        800,
		Height:       800,
		GLMajor:      4,
		GLMinor:      6,
		CoreProfile:  true,
		ShaderPath:   "./shaders/default.glsl",
		Dialect:      DialectGLSL,
		TexturePath:  "./textures/sky.png",
		SmoothTex:    true,
		DrawsPerLoop: 1,
	}
}

// LoadFile merges the YAML document at path over o. Keys absent from the
// file leave the current values untouched.
func (o *ShaderOptions) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects configurations the renderer cannot honor.
func (o *ShaderOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	if o.DrawsPerLoop < 1 {
		return fmt.Errorf("draws_per_frame must be at least 1, got %d", o.DrawsPerLoop)
	}
	// Direct state access and program pipelines are core in 4.5.
	if o.GLMajor < 4 || (o.GLMajor == 4 && o.GLMinor < 5) {
		return fmt.Errorf("OpenGL %d.%d is too old, need at least 4.5", o.GLMajor, o.GLMinor)
	}
	switch o.Dialect {
	case DialectGLSL, DialectES:
	default:
		return fmt.Errorf("unknown shader dialect %q", o.Dialect)
	}
	if o.ShaderPath == "" {
		return errors.New("shader path is empty")
	}
	if o.TexturePath == "" {
		return errors.New("texture path is empty")
	}
	return nil
}

// Parse builds the effective options from defaults, an optional config file
// and the command line, in that order of precedence (flags win, but only the
// ones the user actually passed).
func Parse(name string, args []string, output io.Writer) (*ShaderOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	set := Default()
	fs.StringVar(&set.ConfigPath, "config", "", "Path to a YAML config file")
	fs.BoolVar(&set.Verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&set.Check, "check", false, "Render one frame with the built-in UV shader and verify the corners")
	fs.StringVar(&set.Title, "title", set.Title, "Window title")
	fs.IntVar(&set.Width, "width", set.Width, "Initial window width")
	fs.IntVar(&set.Height, "height", set.Height, "Initial window height")
	fs.IntVar(&set.GLMajor, "gl-major", set.GLMajor, "OpenGL context major version")
	fs.IntVar(&set.GLMinor, "gl-minor", set.GLMinor, "OpenGL context minor version")
	fs.BoolVar(&set.CoreProfile, "core", set.CoreProfile, "Request a core profile context (false for compatibility)")
	fs.StringVar(&set.ShaderPath, "shader", set.ShaderPath, "Fragment shader source file")
	fs.StringVar(&set.Dialect, "dialect", set.Dialect, "Fragment shader dialect: glsl or es")
	fs.StringVar(&set.TexturePath, "texture", set.TexturePath, "Texture image bound to unit 0")
	fs.BoolVar(&set.SmoothTex, "smooth", set.SmoothTex, "Use linear/trilinear texture filtering")
	fs.IntVar(&set.DrawsPerLoop, "draws", set.DrawsPerLoop, "Full-screen draws per frame")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := Default()
	opts.ConfigPath = set.ConfigPath
	opts.Verbose = set.Verbose
	opts.Check = set.Check
	if opts.ConfigPath != "" {
		if err := opts.LoadFile(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := flagFields[f.Name]; ok {
			apply(opts, set)
		}
	})

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

var flagFields = map[string]func(dst, src *ShaderOptions){
	"title":    func(d, s *ShaderOptions) { d.Title = s.Title },
	"width":    func(d, s *ShaderOptions) { d.Width = s.Width },
	"height":   func(d, s *ShaderOptions) { d.Height = s.Height },
	"gl-major": func(d, s *ShaderOptions) { d.GLMajor = s.GLMajor },
	"gl-minor": func(d, s *ShaderOptions) { d.GLMinor = s.GLMinor },
	"core":     func(d, s *ShaderOptions) { d.CoreProfile = s.CoreProfile },
	"shader":   func(d, s *ShaderOptions) { d.ShaderPath = s.ShaderPath },
	"dialect":  func(d, s *ShaderOptions) { d.Dialect = s.Dialect },
	"texture":  func(d, s *ShaderOptions) { d.TexturePath = s.TexturePath },
	"smooth":   func(d, s *ShaderOptions) { d.SmoothTex = s.SmoothTex },
	"draws":    func(d, s *ShaderOptions) { d.DrawsPerLoop = s.DrawsPerLoop },
}
