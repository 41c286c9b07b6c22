// Command omnilog validates logging configuration files and emits records through them, so that launch scripts of
// the extension write to the same place, in the same format, as the extension itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
