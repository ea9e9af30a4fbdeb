package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goshaderquad/inputs"
	"github.com/richinsley/goshaderquad/shader"
)

// cornerTolerance is the per-channel slack, in 8-bit levels, allowed when
// comparing a read-back corner against its vertex color. Corner pixel centres
// sit half a pixel inside the quad.
const cornerTolerance = 2

// CornerResult is one corner of the framebuffer after the check frame.
type CornerResult struct {
	Vertex int
	X, Y   int
	Got    [4]uint8
	Want   [4]uint8
}

func (c CornerResult) OK() bool {
	return colorsMatch(c.Got, c.Want, cornerTolerance)
}

// CheckCorners renders a single frame, reads the four corner pixels of the
// back buffer and compares them with the colors the vertex stage predicts.
// It expects LoadCheckScene to have been used.
func (r *Renderer) CheckCorners() ([]CornerResult, error) {
	clock := inputs.NewClock(r.context.Time)
	r.RenderFrame(r.context.Frame().Uniforms(clock.Elapsed()))
	gl.Finish()

	width, height := r.context.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer is empty (%dx%d)", width, height)
	}

	gl.ReadBuffer(gl.BACK)
	results := make([]CornerResult, 0, shader.QuadVertexCount)
	var failed int
	for id := 0; id < shader.QuadVertexCount; id++ {
		x, y := cornerPixel(id, width, height)
		var px [4]uint8
		gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))

		res := CornerResult{Vertex: id, X: x, Y: y, Got: px, Want: toRGBA8(shader.UVColor(id))}
		if !res.OK() {
			failed++
		}
		slog.Info("corner", "vertex", id, "x", x, "y", y, "got", res.Got, "want", res.Want, "ok", res.OK())
		results = append(results, res)
	}
	r.context.EndFrame()

	if failed > 0 {
		return results, fmt.Errorf("%d of %d corners do not match", failed, len(results))
	}
	return results, nil
}

// cornerPixel maps a quad vertex to the framebuffer pixel it covers, with
// the origin at the bottom left as glReadPixels expects.
func cornerPixel(id, width, height int) (x, y int) {
	uv, _ := shader.QuadVertex(id)
	return int(uv.X()) * (width - 1), int(uv.Y()) * (height - 1)
}

func toRGBA8(c mgl32.Vec4) [4]uint8 {
	var out [4]uint8
	for i := range out {
		out[i] = uint8(mgl32.Clamp(c[i], 0, 1)*255 + 0.5)
	}
	return out
}

func colorsMatch(a, b [4]uint8, tolerance int) bool {
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < -tolerance || d > tolerance {
			return false
		}
	}
	return true
}
