package main

import (
	"fmt"
	"os"
)

// @title MotoDash API
// @version 1.0
// @description API для учёта мотоциклов, заправок, обслуживания, запчастей и поездок

// @host localhost:4000
// @BasePath /
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
