package shader

import (
	"fmt"
	"os"
	"strings"
)

// LoadText reads a shader source file. Missing and empty files are errors so
// that nothing downstream ever compiles an empty program.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("shader %s is empty", path)
	}
	return string(data), nil
}
