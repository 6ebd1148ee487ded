package platform

import (
	"io"
	"os"
	"strings"
	"sync"
)

// WriterWarner writes warning messages to an io.Writer, one message per
// write. The zero value writes to os.Stderr.
type WriterWarner struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterWarner(out io.Writer) *WriterWarner {
	return &WriterWarner{out: out}
}

func (w *WriterWarner) Warn(message string) {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.out
	if out == nil {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, message)
}
