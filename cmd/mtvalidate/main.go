package main

import (
	"os"

	"github.com/osvaldoandrade/mtvalidate/pkg/mtvalidate"
)

func main() {
	os.Exit(mtvalidate.Execute())
}
