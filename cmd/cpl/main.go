package main

import (
	"fmt"
	"os"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
