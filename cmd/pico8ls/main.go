/*
File    : pico8ls-core/cmd/pico8ls/main.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pico8ls",
		Short: "Static analysis core for the PICO-8 dialect",
		Long:  "pico8ls parses PICO-8-dialect source and reports its outline, scopes, and diagnostics without evaluating it.",
	}
	root.AddCommand(newParseCmd())
	root.AddCommand(newReplCmd())
	return root
}
