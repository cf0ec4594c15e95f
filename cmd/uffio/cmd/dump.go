/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/uffio/pkg/dataset"
	"github.com/modalkit/uffio/pkg/registry"
	"github.com/modalkit/uffio/pkg/uff"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Decode a universal file and print per-record summaries",
	Long: `Decode every supported dataset in a universal file and print a short
summary of each record.

Example:
  uffio dump model.unv
  uffio dump --strict measurement.unv.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		opts := []uff.Option{uff.WithLogger(logger)}
		if strict {
			opts = append(opts, uff.WithStrictFields())
		}
		codec := uff.New(opts...)

		records, stats, err := codec.ReadFile(args[0])
		for i, rec := range records {
			fmt.Printf("%4d  %-5s %s\n", i, rec.Tag(), summarize(rec))
		}
		fmt.Printf("\nblocks=%d decoded=%d skipped_unknown=%d skipped_invalid=%d\n",
			stats.Blocks, stats.Decoded, stats.SkippedUnknown, stats.SkippedInvalid)
		if err != nil {
			return fmt.Errorf("decode stopped early: %w", err)
		}
		return nil
	},
}

// summarize renders a one-line description of a decoded record.
func summarize(rec registry.Record) string {
	switch r := rec.(type) {
	case dataset.Header:
		return fmt.Sprintf("model %q file-type %d", r.ModelName, r.FileType)
	case dataset.Units:
		return fmt.Sprintf("units code %d (%s)", r.Code, r.CodeName())
	case dataset.Nodes:
		return fmt.Sprintf("%d nodes", len(r.Nodes))
	case dataset.NodesDP:
		return fmt.Sprintf("%d nodes (double precision)", len(r.Nodes))
	case dataset.Elements:
		return fmt.Sprintf("%d elements", len(r.Elements))
	case dataset.Traceline:
		return fmt.Sprintf("traceline %d, %d nodes", r.ID, len(r.Nodes))
	case dataset.NodalData:
		return fmt.Sprintf("analysis %d, %d nodes, %d values/node", r.AnalysisType, len(r.Nodes), r.ValuesPerNode)
	case dataset.Function:
		form := "text"
		if r.Binary {
			form = "binary"
		}
		return fmt.Sprintf("function %q, %d points (%s)", r.ID1, r.Points(), form)
	default:
		return fmt.Sprintf("%T", rec)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Bool("strict", false, "Abort on malformed fields instead of skipping the record")
}
