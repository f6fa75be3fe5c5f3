package main

import (
	"os"

	"github.com/priyam/studytrail/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
