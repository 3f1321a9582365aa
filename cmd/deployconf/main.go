package main

import (
	"fmt"
	"os"
)

// @title deployconf API
// @version 0.1.0
// @description Read-only lookup of the resolved contract toolchain configuration.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
