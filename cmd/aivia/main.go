package main

import (
	"os"

	"github.com/iutkarshydv/aivia/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
