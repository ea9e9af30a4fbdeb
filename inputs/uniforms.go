package inputs

// Uniforms holds the values pushed into the fragment program for one draw.
type Uniforms struct {
	Resolution [2]float32
	Time       float32
	Mouse      [2]float32
	TexUnit    int32
}

// FrameState caches the window size and cursor position reported by the
// windowing callbacks. It is written by those callbacks and read by the render
// loop, both on the main thread.
type FrameState struct {
	Width  int
	Height int
	MouseX int
	MouseY int
}

// NewFrameState starts with the initial window size and the cursor at the origin.
func NewFrameState(width, height int) *FrameState {
	return &FrameState{Width: width, Height: height}
}

// Resize records a new window size. Values are passed through unchanged,
// including zero while minimized.
func (f *FrameState) Resize(width, height int) {
	f.Width = width
	f.Height = height
}

// CursorMoved records the cursor position truncated toward zero.
func (f *FrameState) CursorMoved(x, y float64) {
	f.MouseX = int(x)
	f.MouseY = int(y)
}

// Uniforms snapshots the state for a frame at the given elapsed time.
func (f *FrameState) Uniforms(elapsed float64) Uniforms {
	return Uniforms{
		Resolution: [2]float32{float32(f.Width), float32(f.Height)},
		Time:       float32(elapsed),
		Mouse:      [2]float32{float32(f.MouseX), float32(f.MouseY)},
		TexUnit:    0,
	}
}

// Clock reports seconds since its first reading. The first call to Elapsed
// returns 0 and later calls never go backwards, even if the source does.
type Clock struct {
	now     func() float64
	start   float64
	last    float64
	started bool
}

func NewClock(now func() float64) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Elapsed() float64 {
	t := c.now()
	if !c.started {
		c.start = t
		c.started = true
		return 0
	}
	e := t - c.start
	if e < c.last {
		return c.last
	}
	c.last = e
	return e
}
