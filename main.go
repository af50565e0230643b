package main

import (
	"fmt"
	"os"

	"github.com/rohanthewiz/logger"

	"plume/cmd"
)

func main() {
	// Initialize logger
	logger.SetLogLevel("info")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
