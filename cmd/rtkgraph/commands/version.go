package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/errors"
)

// VersionTag is overridden at build time via -ldflags.
var VersionTag = "dev"

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rtkgraph version",
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Printf("rtkgraph %s\n", VersionTag)
	},
}

// parsePositiveInt parses a strictly positive integer argument.
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "not a number: %q", raw)
	}
	if n <= 0 {
		return 0, errors.Newf("must be > 0, got %d", n)
	}
	return n, nil
}
