// Command pgntree inspects, validates, and normalizes PGN game archives.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
