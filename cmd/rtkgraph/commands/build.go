package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/conf"
	"github.com/teranos/rtkgraph/errors"
	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/logger"
	"github.com/teranos/rtkgraph/sym"
)

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: sym.Kanji + " Build the mnemonic graph",
	Long: sym.Kanji + ` build — Build the mnemonic graph

Parses the configured kanji and primitive datasets, resolves every mnemonic
keyword, and prints build statistics plus any data-quality findings.

Examples:
  rtkgraph build            # Build and summarize
  rtkgraph build -v         # Include unresolved-keyword details`,
	RunE: runBuildCommand,
}

func runBuildCommand(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	kanji, primitives, levels, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Building mnemonic graph...")
	verbosity, _ := cmd.Flags().GetCount("verbose")
	builder := graph.NewBuilder(cfg.Resolver.Tables(), verbosity, logger.Logger)
	g, diags, err := builder.BuildValidated(kanji, primitives, levels)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Graph build failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Success("Graph built")
	}

	pterm.Println()
	pterm.Info.Printf("Statistics:\n")
	pterm.Printf("  Kanji nodes:      %d\n", g.Meta.KanjiCount)
	pterm.Printf("  Primitive nodes:  %d\n", g.Meta.PrimitiveCount)
	pterm.Printf("  Edges:            %d\n", g.Meta.EdgeCount)

	if len(diags.DuplicateKeywords) > 0 {
		pterm.Println()
		pterm.Warning.Printf("%d keywords shared by multiple nodes of the same kind:\n", len(diags.DuplicateKeywords))
		for _, keyword := range diags.DuplicateKeywords {
			pterm.Printf("  %s\n", keyword)
		}
	}

	if len(g.Meta.MissingMnemonics) > 0 {
		pterm.Println()
		pterm.Warning.Printf("%s %d mnemonic keywords did not resolve to any node:\n", sym.Missing, len(g.Meta.MissingMnemonics))
		for _, keyword := range g.Meta.MissingMnemonics {
			pterm.Printf("  %s\n", keyword)
		}
	}

	return nil
}
