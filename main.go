package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/flowlist/cmd"
	"github.com/thenoetrevino/flowlist/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
