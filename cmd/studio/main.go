// studio is a terminal visual workflow editor: drag tools from a palette
// onto a canvas, wire them into a directed graph and configure each node.
//
// Run: go run ./cmd/studio/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
