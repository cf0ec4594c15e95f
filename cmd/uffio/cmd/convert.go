/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/uffio/pkg/uff"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Decode a universal file and re-encode it",
	Long: `Decode every supported dataset in the input file and write the
re-encoded result to the output path. Compression is chosen by the output
extension (.gz, .zst), and compressed inputs are detected automatically.

Unsupported blocks are dropped from the output; run with a higher log level
to see which.

Example:
  uffio convert model.unv model-clean.unv
  uffio convert measurement.unv measurement.unv.zst`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec := uff.New(uff.WithLogger(logger))

		records, stats, err := codec.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		if err := codec.WriteFile(args[1], records); err != nil {
			return fmt.Errorf("encode %s: %w", args[1], err)
		}

		fmt.Printf("wrote %d records to %s (skipped %d unsupported, %d malformed)\n",
			stats.Decoded, args[1], stats.SkippedUnknown, stats.SkippedInvalid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
