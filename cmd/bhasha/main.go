package main

import (
	"os"

	"github.com/msto63/bhasha/cmd/bhasha/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
