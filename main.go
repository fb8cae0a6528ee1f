package main

import (
	"os"

	"github.com/alantheprice/goclack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
