package main

import (
	"fmt"
	"os"

	"github.com/mcpforge/mcpforge/internal/cli"
	"github.com/mcpforge/mcpforge/internal/tui"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}
