package main

import (
	"os"

	"github.com/SscSPs/ledger_core/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
