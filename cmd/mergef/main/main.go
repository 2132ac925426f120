package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mergef/cmd/mergef"
	"github.com/arthur-debert/mergef/pkg/style"
)

func main() {
	rootCmd := mergef.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if style.StdoutIsTerminal() {
			msg = style.ErrorStyle.Sprint(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(mergef.ExitCode(err))
	}
}
