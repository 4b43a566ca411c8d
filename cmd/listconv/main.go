// Package main is the entry point for the listconv CLI.
package main

import (
	"os"

	"github.com/jmylchreest/listconv/cmd/listconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
