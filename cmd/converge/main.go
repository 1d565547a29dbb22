package main

import (
	"os"

	"github.com/libertypr/converge/cmd/converge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
