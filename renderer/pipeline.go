package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Pipeline is a program pipeline built from two separable single-stage programs.
type Pipeline struct {
	ID              uint32
	VertexProgram   uint32
	FragmentProgram uint32
}

// buildQuadPipeline links both stages, binds them into a pipeline object and
// makes it current. Every object it creates is registered on res.
func buildQuadPipeline(res *releaseStack, vertexSource, fragmentSource string) (*Pipeline, error) {
	vsh, err := newSeparableProgram(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex stage: %w", err)
	}
	res.push("vertex program", func() { gl.DeleteProgram(vsh) })

	fsh, err := newSeparableProgram(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("fragment stage: %w", err)
	}
	res.push("fragment program", func() { gl.DeleteProgram(fsh) })

	p := &Pipeline{VertexProgram: vsh, FragmentProgram: fsh}
	gl.CreateProgramPipelines(1, &p.ID)
	res.push("pipeline", func() { gl.DeleteProgramPipelines(1, &p.ID) })

	gl.UseProgramStages(p.ID, gl.VERTEX_SHADER_BIT, vsh)
	gl.UseProgramStages(p.ID, gl.FRAGMENT_SHADER_BIT, fsh)
	gl.BindProgramPipeline(p.ID)

	return p, nil
}

// newSeparableProgram compiles and links source as a single-stage separable
// program.
func newSeparableProgram(stage uint32, source string) (uint32, error) {
	csources, free := gl.Strs(source + "\x00")
	program := gl.CreateShaderProgramv(stage, 1, csources)
	free()
	if program == 0 {
		return 0, fmt.Errorf("failed to create shader program")
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(logText, "\x00"))
	}
	return program, nil
}
