package main

import (
	"os"

	"github.com/ariel-frischer/chglog-uae/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
