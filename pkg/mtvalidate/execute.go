package mtvalidate

import "github.com/osvaldoandrade/mtvalidate/internal/cli"

// Execute runs the mtvalidate CLI entrypoint.
func Execute() int {
	return cli.Execute()
}
