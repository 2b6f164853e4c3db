package commands

import (
	"os"
	"os/signal"
	"sort"
	"syscall"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/conf"
	"github.com/teranos/rtkgraph/errors"
)

// ConfCmd represents the conf command
var ConfCmd = &cobra.Command{
	Use:   "conf",
	Short: "≡ Manage rtkgraph configuration",
	Long: `≡ conf — Manage rtkgraph configuration

Configuration merges, lowest precedence first: built-in defaults,
/etc/rtkgraph/rtkgraph.toml, ~/.rtkgraph/rtkgraph.toml, a project
rtkgraph.toml found by walking up from the working directory, and RTK_*
environment variables.`,
}

var confShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE:  runConfShowCommand,
}

var confSetDepthCmd = &cobra.Command{
	Use:   "set-depth DEPTH",
	Short: "Persist the default tree depth in the user config",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfSetDepthCommand,
}

var confSetPageSizeCmd = &cobra.Command{
	Use:   "set-page-size SIZE",
	Short: "Persist the referer page size in the user config",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfSetPageSizeCommand,
}

var confSetOverrideCmd = &cobra.Command{
	Use:   "set-override KEYWORD CHAR",
	Short: "Persist a keyword override in the user config",
	Long: `Persist a keyword override in the user config.

The override forces a mnemonic keyword to resolve to a specific character,
bypassing the generic keyword search.

Examples:
  rtkgraph conf set-override elbow 厶
  rtkgraph conf set-override "walking legs" 夂`,
	Args: cobra.ExactArgs(2),
	RunE: runConfSetOverrideCommand,
}

var confWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the user config file and report reloads",
	Long: `Watch the user config file and report reloads.

Blocks until interrupted. Edits to ~/.rtkgraph/rtkgraph.toml are debounced,
re-validated and reported with the new effective tree settings; writes made
by rtkgraph itself (conf set-*) are ignored.`,
	RunE: runConfWatchCommand,
}

func init() {
	ConfCmd.AddCommand(confShowCmd)
	ConfCmd.AddCommand(confSetDepthCmd)
	ConfCmd.AddCommand(confSetPageSizeCmd)
	ConfCmd.AddCommand(confSetOverrideCmd)
	ConfCmd.AddCommand(confWatchCmd)
}

func runConfShowCommand(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	pterm.DefaultSection.Println("Data")
	pterm.Printf("  kanji_source:     %s\n", orUnset(cfg.Data.KanjiSource))
	pterm.Printf("  primitive_source: %s\n", orUnset(cfg.Data.PrimitiveSource))
	pterm.Printf("  jlpt_source:      %s\n", orUnset(cfg.Data.JLPTSource))
	pterm.Printf("  cache_dir:        %s\n", cfg.Data.CacheDir)
	pterm.Printf("  delimiter:        %q\n", cfg.Delimiter())

	pterm.DefaultSection.Println("Tree")
	pterm.Printf("  max_depth:         %d\n", cfg.Tree.MaxDepth)
	pterm.Printf("  referer_page_size: %d\n", cfg.Tree.RefererPageSize)

	pterm.DefaultSection.Println("Resolver")
	pterm.Printf("  excluded:     %v\n", cfg.Resolver.Excluded)
	pterm.Printf("  prefer_kanji: %v\n", cfg.Resolver.PreferKanji)
	if len(cfg.Resolver.Overrides) > 0 {
		keywords := make([]string, 0, len(cfg.Resolver.Overrides))
		for keyword := range cfg.Resolver.Overrides {
			keywords = append(keywords, keyword)
		}
		sort.Strings(keywords)
		pterm.Printf("  overrides:\n")
		for _, keyword := range keywords {
			pterm.Printf("    %s = %s\n", keyword, cfg.Resolver.Overrides[keyword])
		}
	}
	return nil
}

func runConfSetDepthCommand(cmd *cobra.Command, args []string) error {
	depth, err := parsePositiveInt(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid depth")
	}
	if err := conf.UpdateTreeMaxDepth(depth); err != nil {
		return err
	}
	pterm.Success.Printf("tree.max_depth set to %d in %s\n", depth, conf.UserConfigPath())
	return nil
}

func runConfSetPageSizeCommand(cmd *cobra.Command, args []string) error {
	pageSize, err := parsePositiveInt(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid page size")
	}
	if err := conf.UpdateRefererPageSize(pageSize); err != nil {
		return err
	}
	pterm.Success.Printf("tree.referer_page_size set to %d in %s\n", pageSize, conf.UserConfigPath())
	return nil
}

func runConfSetOverrideCommand(cmd *cobra.Command, args []string) error {
	keyword, character := args[0], args[1]
	if utf8.RuneCountInString(character) != 1 {
		return errors.Newf("override value must be a single character, got %q", character)
	}
	if err := conf.UpdateResolverOverride(keyword, character); err != nil {
		return err
	}
	pterm.Success.Printf("resolver override %q = %s set in %s\n", keyword, character, conf.UserConfigPath())
	return nil
}

func runConfWatchCommand(cmd *cobra.Command, args []string) error {
	path := conf.UserConfigPath()
	if path == "" {
		return errors.New("could not determine home directory")
	}
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "no config file at %s (create one with conf set-depth)", path)
	}

	watcher, err := conf.NewConfigWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	conf.SetGlobalWatcher(watcher)

	watcher.OnReload(func(cfg *conf.Config) error {
		pterm.Info.Printf("Config reloaded: max_depth=%d referer_page_size=%d delimiter=%q\n",
			cfg.Tree.MaxDepth, cfg.Tree.RefererPageSize, cfg.Delimiter())
		return nil
	})
	watcher.Start()

	pterm.Info.Printf("Watching %s (Ctrl-C to stop)\n", path)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}
