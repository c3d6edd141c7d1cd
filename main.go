package main

import (
	"os"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
