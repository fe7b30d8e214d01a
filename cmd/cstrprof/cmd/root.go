package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cstrprof",
	Short: "Measure allocations of fixedcstr constructions",
	Long: `cstrprof builds fixedcstr strings in a loop and reports which storage
each case landed in and how many heap allocations it cost.

Scenarios come from a YAML or TOML file, or a built-in set that covers
both sides of the inline/heap boundary.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
