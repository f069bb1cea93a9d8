// Command tinct derives terminal widget styles from a color scheme.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/tinct/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
