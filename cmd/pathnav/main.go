package main

import (
	"os"

	"github.com/philip928lin/pathnav/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
