package renderer

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderquad/inputs"
)

// Uniform names the fragment stage may declare. Any of them may be missing.
var uniformNames = [...]string{"resolution", "time", "mouse", "tex"}

type uniformLocations struct {
	resolution int32
	time       int32
	mouse      int32
	tex        int32
}

// lookupUniforms resolves the uniform locations in program. mapName turns a
// source name into the name the program was linked with.
func lookupUniforms(program uint32, mapName func(string) string) uniformLocations {
	var locs [len(uniformNames)]int32
	for i, name := range uniformNames {
		locs[i] = gl.GetUniformLocation(program, gl.Str(mapName(name)+"\x00"))
	}
	return uniformLocations{resolution: locs[0], time: locs[1], mouse: locs[2], tex: locs[3]}
}

func (l uniformLocations) missing() []string {
	var names []string
	for i, loc := range [...]int32{l.resolution, l.time, l.mouse, l.tex} {
		if loc < 0 {
			names = append(names, uniformNames[i])
		}
	}
	return names
}

func (l uniformLocations) push(program uint32, u inputs.Uniforms) {
	if l.resolution != -1 {
		gl.ProgramUniform2f(program, l.resolution, u.Resolution[0], u.Resolution[1])
	}
	if l.time != -1 {
		gl.ProgramUniform1f(program, l.time, u.Time)
	}
	if l.mouse != -1 {
		gl.ProgramUniform2f(program, l.mouse, u.Mouse[0], u.Mouse[1])
	}
	if l.tex != -1 {
		gl.ProgramUniform1i(program, l.tex, u.TexUnit)
	}
}
