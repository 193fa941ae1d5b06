package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
