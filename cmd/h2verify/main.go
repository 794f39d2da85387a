// Package main is the entry point for the h2verify CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/h2verify/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
