package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/logger"
	"github.com/teranos/rtkgraph/sym"
	"github.com/teranos/rtkgraph/tree"
)

var treeDepth int

// TreeCmd represents the tree command
var TreeCmd = &cobra.Command{
	Use:   "tree CHAR",
	Short: sym.Uses + " Render the component tree of a kanji",
	Long: sym.Uses + ` tree — Render the component tree of a kanji

Builds the depth-bounded descendant tree for a kanji and renders it,
annotating JLPT levels and branches truncated by cycles.

Examples:
  rtkgraph tree 唱           # Default depth from configuration
  rtkgraph tree 唱 --depth 2 # Explicit depth bound`,
	Args: cobra.ExactArgs(1),
	RunE: runTreeCommand,
}

func init() {
	TreeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "Maximum tree depth (0 = configured default)")
}

func runTreeCommand(cmd *cobra.Command, args []string) error {
	g, cfg, err := loadGraph(cmd)
	if err != nil {
		return err
	}

	depth := treeDepth
	if depth <= 0 {
		depth = cfg.Tree.MaxDepth
	}

	transformer := tree.NewTransformer(g, logger.Logger)
	result, err := transformer.BuildTree(graph.NodeID(graph.KindKanji, args[0]), depth)
	if err != nil {
		return err
	}

	circular := make(map[string]bool, len(result.Meta.CircularReferenceIDs))
	for _, id := range result.Meta.CircularReferenceIDs {
		circular[id] = true
	}

	root := renderNode(result.Root, circular)
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		return err
	}

	pterm.Printf("%d nodes, depth %d reached\n", result.Meta.TotalNodes, result.Meta.MaxDepth)
	if len(result.Meta.CircularReferenceIDs) > 0 {
		pterm.Warning.Printf("%s %d branches truncated by cycles\n", sym.Cycle, len(result.Meta.CircularReferenceIDs))
	}
	return nil
}

// renderNode converts a TreeNode into pterm's tree structure.
func renderNode(n *tree.TreeNode, circular map[string]bool) pterm.TreeNode {
	out := pterm.TreeNode{Text: nodeCaption(n, circular)}
	for _, child := range n.Children {
		out.Children = append(out.Children, renderNode(child, circular))
	}
	return out
}

func nodeCaption(n *tree.TreeNode, circular map[string]bool) string {
	if n.IsPlaceholder() {
		return sym.More + " " + n.Label
	}

	marker := sym.Primitive
	if n.Node.Kind == graph.KindKanji {
		marker = sym.Kanji
	}
	caption := fmt.Sprintf("%s %s %s", marker, n.Node.Character, n.Node.Keyword)
	if n.Node.JLPT != "" {
		caption += fmt.Sprintf(" [%s]", n.Node.JLPT)
	}
	if circular[n.ID] {
		caption += " " + sym.Cycle
	}
	return caption
}
