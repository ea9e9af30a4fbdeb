package renderer

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func debugTypeName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "ERROR"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	default:
		return "INFO"
	}
}

// newDebugHandler writes driver messages to sink. It only logs.
func newDebugHandler(sink *slog.Logger) gl.DebugProc {
	return func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		kind := debugTypeName(gltype)
		switch kind {
		case "ERROR":
			sink.Error("GL_DEBUG", "type", kind, "id", id, "text", message)
		case "PERFORMANCE":
			sink.Warn("GL_DEBUG", "type", kind, "id", id, "text", message)
		default:
			sink.Info("GL_DEBUG", "type", kind, "id", id, "text", message)
		}
	}
}

// enableDebugOutput routes synchronous driver messages to sink.
func enableDebugOutput(sink *slog.Logger) {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(newDebugHandler(sink), nil)
}
