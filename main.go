package main

import (
	"os"

	"github.com/fssp-tools/attest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
