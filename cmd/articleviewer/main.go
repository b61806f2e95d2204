// ABOUTME: Command-line entry point for rendering an article with authorship colors
// ABOUTME: Runs one viewer session against the live wiki and prints the result

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
