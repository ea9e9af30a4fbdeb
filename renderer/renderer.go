package renderer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderquad/graphics"
	"github.com/richinsley/goshaderquad/inputs"
	"github.com/richinsley/goshaderquad/options"
	"github.com/richinsley/goshaderquad/shader"
	"github.com/richinsley/goshaderquad/translator"
)

const vertexVersionGL = 460

var clearColor = [4]float32{0.09, 0.09, 0.09, 1.0}

// Renderer draws one fragment shader over the whole window every frame.
type Renderer struct {
	context   graphics.Context
	opts      *options.ShaderOptions
	resources releaseStack

	quadVAO  uint32
	pipeline *Pipeline
	texture  *inputs.Texture
	uniforms uniformLocations
	frames   int
}

// NewRenderer prepares GL state on ctx. Driver debug messages go to debugSink.
func NewRenderer(ctx graphics.Context, opts *options.ShaderOptions, debugSink *slog.Logger) *Renderer {
	r := &Renderer{
		context: ctx,
		opts:    opts,
	}
	r.context.MakeCurrent()

	enableDebugOutput(debugSink)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r
}

// LoadScene reads the configured fragment shader and texture and builds the
// pipeline from them.
func (r *Renderer) LoadScene(ctx context.Context) error {
	source, err := shader.LoadText(r.opts.ShaderPath)
	if err != nil {
		return err
	}

	vertexSource := shader.GenerateVertexShader(vertexVersionGL, shader.DefaultVarying)
	mapName := func(name string) string { return name }

	if r.opts.Dialect == options.DialectES {
		xlate, err := translator.New(ctx)
		if err != nil {
			return err
		}
		res, err := xlate.TranslateFragment(source)
		if err != nil {
			return err
		}
		source = res.Code
		vertexSource = shader.GenerateVertexShader(translator.OutputVersion, res.VaryingName(shader.DefaultVarying))
		mapName = res.MappedName
	}

	return r.buildScene(vertexSource, source, mapName)
}

// LoadCheckScene builds the pipeline with the built-in UV fragment stage.
func (r *Renderer) LoadCheckScene() error {
	vertexSource := shader.GenerateVertexShader(vertexVersionGL, shader.DefaultVarying)
	return r.buildScene(vertexSource, shader.GetUVFragmentShader(), func(name string) string { return name })
}

func (r *Renderer) buildScene(vertexSource, fragmentSource string, mapName func(string) string) error {
	pixels, err := inputs.LoadImage(r.opts.TexturePath)
	if err != nil {
		return err
	}

	// Core profiles refuse to draw without a bound vertex array, even an empty one.
	gl.CreateVertexArrays(1, &r.quadVAO)
	r.resources.push("vertex array", func() { gl.DeleteVertexArrays(1, &r.quadVAO) })
	gl.BindVertexArray(r.quadVAO)

	r.pipeline, err = buildQuadPipeline(&r.resources, vertexSource, fragmentSource)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	r.uniforms = lookupUniforms(r.pipeline.FragmentProgram, mapName)
	if missing := r.uniforms.missing(); len(missing) > 0 {
		slog.Debug("fragment shader does not use some uniforms", "missing", missing)
	}

	r.texture, err = inputs.NewTexture(pixels, r.opts.SmoothTex)
	if err != nil {
		return fmt.Errorf("failed to create texture from %s: %w", r.opts.TexturePath, err)
	}
	r.resources.push("texture", r.texture.Destroy)

	slog.Info("scene loaded",
		"shader", r.opts.ShaderPath,
		"texture", r.opts.TexturePath,
		"size", fmt.Sprintf("%dx%d", pixels.Width, pixels.Height),
		"channels", pixels.Channels,
		"mip_levels", r.texture.Params.Levels)
	return nil
}

// RenderFrame clears the default framebuffer and draws the quad with u.
func (r *Renderer) RenderFrame(u inputs.Uniforms) {
	gl.ClearBufferfv(gl.COLOR, 0, &clearColor[0])
	gl.ClearBufferfi(gl.DEPTH_STENCIL, 0, 1.0, 0)

	for i := 0; i < r.opts.DrawsPerLoop; i++ {
		r.uniforms.push(r.pipeline.FragmentProgram, u)
		r.texture.Bind(0)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, shader.QuadVertexCount)
	}
}

// Run renders until the window is asked to close.
func (r *Renderer) Run() {
	clock := inputs.NewClock(r.context.Time)
	frame := r.context.Frame()

	for !r.context.ShouldClose() {
		r.RenderFrame(frame.Uniforms(clock.Elapsed()))
		r.context.EndFrame()
		r.frames++
	}
	slog.Info("window closed", "frames", r.frames)
}

// Shutdown releases texture, pipeline, programs and vertex array, in that
// order. The context itself is shut down by the caller.
func (r *Renderer) Shutdown() {
	r.resources.releaseAll()
}
