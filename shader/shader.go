package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// QuadVertexCount is the number of vertices in the full-screen triangle strip.
const QuadVertexCount = 4

// DefaultVarying is the name of the UV output of the built-in vertex stage.
const DefaultVarying = "uv"

// The vertex stage has no inputs. UV and clip position come from
// gl_VertexID alone, so no vertex buffer is ever bound.
const quadVertexSourceGL = `#version %d
%sout vec2 %s;

out gl_PerVertex {
    vec4 gl_Position;
};

void main() {
    %s.x = float(gl_VertexID & 1);
    %s.y = float((gl_VertexID >> 1) & 1);
    gl_Position = vec4(%s * 2.0 - 1.0, 0.0, 1.0);
}
`

// uvFragmentSourceGL paints each fragment with its interpolated UV.
const uvFragmentSourceGL = `#version 460
layout(location = 0) in vec2 uv;
layout(location = 0) out vec4 frag_color;

void main() {
    frag_color = vec4(uv, 0.0, 1.0);
}
`

// GenerateVertexShader returns the built-in full-screen quad vertex stage.
// For desktop GLSL the UV output is bound by location 0 and named uv. Shaders
// that went through the translator are matched by name instead, since the
// translator renames identifiers and drops input locations.
func GenerateVertexShader(version int, varying string) string {
	layout := ""
	if varying == "" || varying == DefaultVarying {
		varying = DefaultVarying
		layout = "layout(location = 0) "
	}
	return fmt.Sprintf(quadVertexSourceGL, version, layout, varying, varying, varying, varying)
}

// GetUVFragmentShader returns a fragment stage that outputs vec4(uv, 0, 1).
func GetUVFragmentShader() string {
	return uvFragmentSourceGL
}

// QuadVertex mirrors the vertex stage on the CPU for vertex index id.
func QuadVertex(id int) (uv mgl32.Vec2, pos mgl32.Vec4) {
	uv = mgl32.Vec2{float32(id & 1), float32((id >> 1) & 1)}
	clip := uv.Mul(2).Sub(mgl32.Vec2{1, 1})
	return uv, clip.Vec4(0, 1)
}

// UVColor is the color the UV fragment stage writes at vertex id.
func UVColor(id int) mgl32.Vec4 {
	uv, _ := QuadVertex(id)
	return uv.Vec4(0, 1)
}
