package main

import (
	"os"

	"clipcrypt/cmd/clipcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
