package main

import (
	"os"

	"github.com/dcastro/dequenet/cmd"
)

func main() {
	if err := cmd.CmdDequeNet.Execute(); err != nil {
		os.Exit(1)
	}
}
