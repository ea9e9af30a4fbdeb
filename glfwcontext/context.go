package glfwcontext

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goshaderquad/inputs"
	"github.com/richinsley/goshaderquad/options"
)

// Context owns the window, its GL context and the frame state its callbacks
// keep up to date.
type Context struct {
	window *glfw.Window
	frame  *inputs.FrameState
}

// New creates the window, makes its context current and loads the GL entry
// points. InitGraphics must have been called first.
func New(opts *options.ShaderOptions, visible bool) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window(%d, %d, %s): %w", opts.Width, opts.Height, opts.Title, err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to load OpenGL: %w", err)
	}
	slog.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	c := &Context{
		window: win,
		frame:  inputs.NewFrameState(opts.Width, opts.Height),
	}
	win.SetSizeCallback(c.glfwSizeCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

func (c *Context) glfwSizeCallback(w *glfw.Window, width, height int) {
	c.frame.Resize(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	c.frame.CursorMoved(x, y)
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Escape behaves like the close button.
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (c *Context) Frame() *inputs.FrameState {
	return c.frame
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window. GLFW itself is torn down by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("couldn't initialize GLFW: %w", err)
	}
	slog.Debug("GLFW initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	slog.Debug("GLFW terminated")
}
