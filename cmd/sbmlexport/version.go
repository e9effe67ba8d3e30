package main

import (
	"fmt"

	"github.com/aretw0/sbmlexport"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sbmlexport",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sbmlexport version %s\n", sbmlexport.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
