package main

import (
	"os"

	"github.com/msto63/wflog/cmd/wflog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
