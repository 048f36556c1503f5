//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

// main explains how to build the viewer. The board library and cmd/difftest
// need no build tag.
func main() {
	fmt.Fprintln(os.Stderr, "The life viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "For a headless board comparison use ./cmd/difftest.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or build with `-tags ebiten`.")
	os.Exit(2)
}
