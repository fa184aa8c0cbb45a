// gapscan - Sequential Gap Detection Tool
//
// gapscan scans delimited text data and reports gaps between subsequent
// lines: it parses one field per line as a number or timestamp and emits
// every consecutive pair whose difference crosses the configured threshold.
package main

import (
	"os"

	"github.com/gapscan/gapscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
