package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/logger"
	"github.com/teranos/rtkgraph/sym"
	"github.com/teranos/rtkgraph/tree"
)

var (
	refererPageSize int
	refererOffset   int
)

// ReferersCmd represents the referers command
var ReferersCmd = &cobra.Command{
	Use:   "referers CHAR|NODE_ID",
	Short: sym.UsedIn + " List the kanji whose mnemonics use a node",
	Long: sym.UsedIn + ` referers — List the kanji whose mnemonics use a node

Prints one page of the reverse-reference view. Accepts either a kanji
character or a full node id (e.g. primitive_mouth). When the page is
truncated, the placeholder's next offset is printed for the follow-up call.

Examples:
  rtkgraph referers 口
  rtkgraph referers primitive_mouth --page-size 5 --offset 10`,
	Args: cobra.ExactArgs(1),
	RunE: runReferersCommand,
}

func init() {
	ReferersCmd.Flags().IntVarP(&refererPageSize, "page-size", "p", 0, "Referers per page (0 = configured default)")
	ReferersCmd.Flags().IntVarP(&refererOffset, "offset", "o", 0, "Offset into the referer list")
}

func runReferersCommand(cmd *cobra.Command, args []string) error {
	g, cfg, err := loadGraph(cmd)
	if err != nil {
		return err
	}

	pageSize := refererPageSize
	if pageSize <= 0 {
		pageSize = cfg.Tree.RefererPageSize
	}

	// a bare character is shorthand for its kanji node id
	nodeID := args[0]
	if _, ok := g.NodeByID(nodeID); !ok {
		nodeID = graph.NodeID(graph.KindKanji, args[0])
	}

	transformer := tree.NewTransformer(g, logger.Logger)
	page, err := transformer.BuildReferers(nodeID, pageSize, refererOffset)
	if err != nil {
		return err
	}

	if len(page) == 0 {
		pterm.Info.Printf("No referers for %s at offset %d\n", nodeID, refererOffset)
		return nil
	}

	pterm.Info.Printf("%s Referers of %s:\n", sym.UsedIn, nodeID)
	for _, n := range page {
		if n.IsPlaceholder() {
			pterm.Printf("  %s %s (total %d, next offset %d)\n",
				sym.More, n.Label, n.More.Total, n.More.NextOffset)
			continue
		}
		caption := n.Node.Character + " " + n.Node.Keyword
		if n.Node.JLPT != "" {
			caption += " [" + string(n.Node.JLPT) + "]"
		}
		pterm.Printf("  %s %s\n", sym.Kanji, caption)
	}
	return nil
}
