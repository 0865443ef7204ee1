package main

import (
	"os"

	"github.com/Vishalbharadwaj27/Diligent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
