// Package main provides the nlg command-line tool.
package main

import (
	"os"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
