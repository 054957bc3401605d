package main

import (
	"os"

	"github.com/go-deck/deck/cmd/deck/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
