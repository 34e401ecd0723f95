package main

import (
	"os"

	"github.com/secmon-lab/leanport/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
