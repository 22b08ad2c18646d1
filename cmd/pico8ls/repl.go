/*
File    : pico8ls-core/cmd/pico8ls/repl.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package main

import (
	"os"

	"github.com/akashmaji946/pico8ls-core/repl"
	"github.com/spf13/cobra"
)

const banner = `  ___  _ ___ ___     ___
 | _ \(_)_  ) _ \___( _ )
 |  _/ | / / (_) |___/ _ \
 |_| |_|/___\___/    \___/`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse PICO-8-dialect chunks and inspect their outline and diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.NewRepl(banner, "0.1.0", "akashmaji946", "--------------------------------", "MIT", "pico8ls> ")
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}
