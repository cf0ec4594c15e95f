/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modalkit/uffio/pkg/block"
	"github.com/modalkit/uffio/pkg/fsio"
	"github.com/modalkit/uffio/pkg/registry"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List the blocks of a universal file without decoding them",
	Long: `List every block of a universal file with its tag, line count, and
payload size, without running the dataset parsers.

Example:
  uffio inspect model.unv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := fsio.LoadBytes(args[0])
		if err != nil {
			return err
		}

		blocks, scanErr := block.ScanAll(data)
		reg := registry.Default()

		fmt.Printf("%-6s %-8s %8s %12s %s\n", "BLOCK", "TAG", "LINES", "PAYLOAD", "SUPPORTED")
		for _, b := range blocks {
			tag := registry.TagOf(b.FirstLine())
			supported := "no"
			if reg.IsSupported(tag) {
				supported = "yes"
			}
			fmt.Printf("%-6d %-8s %8d %12d %s\n", b.Index, tag, len(b.Lines), len(b.Payload), supported)
		}

		if scanErr != nil {
			return fmt.Errorf("scan stopped early: %w", scanErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
