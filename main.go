package main

import (
	"os"

	"github.com/lotushuong244-bit/englishmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
