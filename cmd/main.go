package main

import (
	"os"

	"Grocery-Tracker/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
