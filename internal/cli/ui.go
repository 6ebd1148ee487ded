package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiDim     = "\x1b[2m"
	ansiRed     = "\x1b[38;5;196m"
	ansiGreen   = "\x1b[38;5;82m"
	ansiYellow  = "\x1b[38;5;214m"
	ansiMagenta = "\x1b[38;5;201m"
	ansiCyan    = "\x1b[38;5;51m"
)

const fingerprintWidth = 12

// renderer colors human-readable output. JSON output and non-terminal
// writers are never colored; NO_COLOR and MTVALIDATE_NO_COLOR switch it off.
type renderer struct {
	color bool
}

func newRenderer(out io.Writer, asJSON bool) renderer {
	return renderer{color: !asJSON && !colorDisabledByEnv() && isTerminal(out)}
}

func colorDisabledByEnv() bool {
	for _, key := range []string{"NO_COLOR", "MTVALIDATE_NO_COLOR"} {
		if strings.TrimSpace(os.Getenv(key)) != "" {
			return true
		}
	}
	return false
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && term != "dumb"
}

func (r renderer) wrap(code, value string) string {
	if !r.color || value == "" {
		return value
	}
	return code + value + ansiReset
}

func (r renderer) key(value string) string {
	return r.wrap(ansiBold+ansiCyan, value)
}

func (r renderer) ok(value string) string {
	return r.wrap(ansiBold+ansiGreen, value)
}

func (r renderer) warn(value string) string {
	return r.wrap(ansiBold+ansiYellow, value)
}

func (r renderer) err(value string) string {
	return r.wrap(ansiBold+ansiRed, value)
}

func (r renderer) accent(value string) string {
	return r.wrap(ansiBold+ansiMagenta, value)
}

func (r renderer) dim(value string) string {
	return r.wrap(ansiDim, value)
}

// outcome colors a validation outcome: valid green, invalid yellow, error red.
func (r renderer) outcome(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeValid:
		return r.ok(outcome.String())
	case domain.OutcomeInvalid:
		return r.warn(outcome.String())
	case domain.OutcomeError:
		return r.err(outcome.String())
	default:
		return r.dim(outcome.String())
	}
}

// fingerprint shortens a schema digest for listings.
func (r renderer) fingerprint(value string) string {
	if len(value) > fingerprintWidth {
		value = value[:fingerprintWidth]
	}
	return r.dim(value)
}

// description indents a multi-line schema engine message under its report.
func (r renderer) description(value string) string {
	lines := strings.Split(strings.TrimRight(value, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + r.dim(line)
	}
	return strings.Join(lines, "\n")
}

func (r renderer) kv(out io.Writer, key, value string) error {
	_, err := fmt.Fprintf(out, "%s: %s\n", r.key(key), value)
	return err
}
