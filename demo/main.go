// Command labeled inspects and converts labeled delimited-text files.
//
//	labeled show users.csv
//	labeled describe users.csv --delimiter ';'
//	labeled convert users.csv --to arrow --out users.arrow
//	labeled config init labeled.yaml
package main

import (
	"fmt"
	"os"

	"github.com/kmi-jp/labeled/logger"
)

var version = "0.1.0"

func main() {
	root := newRootCommand()
	err := root.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
