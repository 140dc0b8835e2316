package main

import (
	"os"

	"schedule-interpreter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
