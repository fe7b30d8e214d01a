package cmd

import (
	"fmt"
	"runtime"

	"github.com/rawbytedev/fixedcstr"
	"github.com/rawbytedev/fixedcstr/pkg/cmem"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build settings",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cstrprof v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Capacity:   %d\n", fixedcstr.Capacity)
		fmt.Fprintf(out, "  cgo:        %t\n", cmem.Available)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
