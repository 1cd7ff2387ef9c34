// HookTerm - chat with webhook-backed assistants from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/lazyvibe/hookterm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
