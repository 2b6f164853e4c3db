package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/cmd/rtkgraph/commands"
	"github.com/teranos/rtkgraph/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rtkgraph",
	Short: "rtkgraph - Kanji mnemonic keyword graph",
	Long: `rtkgraph - Kanji and primitive mnemonic keyword graph.

rtkgraph parses Heisig-style kanji and primitive datasets, links every kanji
to the components its memory story uses, and derives component trees and
reverse-reference views from the resulting graph.

Available commands:
  build    - Parse the configured datasets and build the graph
  tree     - Render the component tree of a kanji
  referers - List the kanji whose mnemonics use a node
  resolve  - Show how mnemonic keywords disambiguate
  conf     - Manage rtkgraph configuration

Examples:
  rtkgraph build                   # Build and summarize the graph
  rtkgraph tree 唱 --depth 2       # Component tree, two levels deep
  rtkgraph referers primitive_mouth # First page of referers
  rtkgraph resolve "mouth;day"     # Explain keyword resolution
  rtkgraph conf show               # Show effective configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(false, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.TreeCmd)
	rootCmd.AddCommand(commands.ReferersCmd)
	rootCmd.AddCommand(commands.ResolveCmd)
	rootCmd.AddCommand(commands.ConfCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
