package main

import (
	"os"

	"github.com/latifur-rahman/campus-portal-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
