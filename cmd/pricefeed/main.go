package main

import (
	"os"

	"github.com/rustyeddy/pricefeed/cmd/pricefeed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
