// Command jvmlite loads a single Java class file and runs it.
package main

import (
	"fmt"
	"os"

	"github.com/adehart/jvmlite/cmd/jvmlite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
