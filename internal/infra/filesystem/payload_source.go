package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrPayloadRequired = errors.New("payload is required")
var ErrPayloadConflict = errors.New("inline payload and file cannot be used together")

// ReadInput returns the inline value or the contents of filePath, whichever
// was given.
func ReadInput(label, inline, filePath string) ([]byte, error) {
	inline = strings.TrimSpace(inline)
	filePath = strings.TrimSpace(filePath)
	if inline != "" && filePath != "" {
		return nil, fmt.Errorf("%s: %w", label, ErrPayloadConflict)
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", label, err)
		}
		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			return nil, fmt.Errorf("%s: %w", label, ErrPayloadRequired)
		}
		return data, nil
	}
	if inline == "" {
		return nil, fmt.Errorf("%s: %w", label, ErrPayloadRequired)
	}
	return []byte(inline), nil
}
