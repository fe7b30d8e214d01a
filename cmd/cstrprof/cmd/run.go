package cmd

import (
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"text/tabwriter"

	"github.com/rawbytedev/fixedcstr/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	iterations int
	allocator  string
	memProfile string
	pprofAddr  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run allocation scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if pprofAddr != "" {
			go func() {
				log.Println(http.ListenAndServe(pprofAddr, nil))
			}()
		}
		if memProfile != "" {
			runtime.MemProfileRate = 1
		}

		results, err := scenario.Run(cfg)
		if err != nil {
			return err
		}
		if err := printResults(cmd.OutOrStdout(), results); err != nil {
			return err
		}

		if memProfile != "" {
			if err := writeHeapProfile(memProfile); err != nil {
				return err
			}
			if verbose {
				log.Printf("heap profile written to %s", memProfile)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "scenario file (.yaml, .yml or .toml); built-in scenarios when empty")
	runCmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "constructions per case (overrides the file)")
	runCmd.Flags().StringVar(&allocator, "allocator", "", "heap allocator: go or c (overrides the file)")
	runCmd.Flags().StringVar(&memProfile, "memprofile", "", "write a heap profile to this file")
	runCmd.Flags().StringVar(&pprofAddr, "pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	rootCmd.AddCommand(runCmd)
}

func loadConfig() (*scenario.Config, error) {
	cfg := scenario.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = scenario.Load(cfgFile); err != nil {
			return nil, err
		}
		if verbose {
			log.Printf("loaded %d cases from %s", len(cfg.Cases), cfgFile)
		}
	}
	if iterations != 0 {
		cfg.Iterations = iterations
	}
	if allocator != "" {
		cfg.Allocator = allocator
	}
	return cfg, cfg.Validate()
}

func printResults(w io.Writer, results []scenario.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tLEN\tSTORAGE\tALLOCS/OP\tBYTES/OP")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f\t%.0f\n", r.Name, r.Length, r.Storage, r.AllocsPerOp, r.BytesPerOp)
	}
	return tw.Flush()
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
