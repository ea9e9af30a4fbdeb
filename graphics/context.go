package graphics

import "github.com/richinsley/goshaderquad/inputs"

// Context is the window and GL context the renderer draws into.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the frame and drains pending window events. Resize
	// and cursor callbacks only run from here.
	EndFrame()
	GetFramebufferSize() (int, int)
	// Time is a monotonic clock in seconds.
	Time() float64
	// Frame is the state cached by the resize and cursor callbacks.
	Frame() *inputs.FrameState
}
