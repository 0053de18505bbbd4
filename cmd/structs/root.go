package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "structs",
		Short:        "Build and inspect trees and bit arrays",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "log how trees restructure")
	cmd.AddCommand(newTreeCmd(ro), newBitsCmd())
	return cmd
}
