// main is the entry point for the aidgi CLI.
package main

import (
	"fmt"
	"os"

	"github.com/kr-muchiri/aidgi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
