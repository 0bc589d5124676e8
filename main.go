package main

import (
	"os"

	"github.com/transitops/omloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
