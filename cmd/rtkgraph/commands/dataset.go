package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/conf"
	"github.com/teranos/rtkgraph/errors"
	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/ingest"
	"github.com/teranos/rtkgraph/logger"
	"github.com/teranos/rtkgraph/rtk"
	"github.com/teranos/rtkgraph/rtk/parser"
)

// loadRecords resolves and parses the configured datasets.
func loadRecords(cfg *conf.Config) ([]rtk.KanjiRecord, []rtk.PrimitiveRecord, map[string]rtk.JLPTLevel, error) {
	if cfg.Data.KanjiSource == "" {
		return nil, nil, nil, errors.New("data.kanji_source is not configured")
	}
	if cfg.Data.PrimitiveSource == "" {
		return nil, nil, nil, errors.New("data.primitive_source is not configured")
	}

	kanjiSrc, err := ingest.Resolve(cfg.Data.KanjiSource, cfg.Data.CacheDir, logger.Logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to resolve kanji source")
	}
	defer kanjiSrc.Close()

	primitiveSrc, err := ingest.Resolve(cfg.Data.PrimitiveSource, cfg.Data.CacheDir, logger.Logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to resolve primitive source")
	}
	defer primitiveSrc.Close()

	kanjiText, err := kanjiSrc.Text()
	if err != nil {
		return nil, nil, nil, err
	}
	primitiveText, err := primitiveSrc.Text()
	if err != nil {
		return nil, nil, nil, err
	}

	kanji, err := parser.ParseKanjiDelim(kanjiText, cfg.Delimiter())
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to parse kanji dataset")
	}
	primitives, err := parser.ParsePrimitivesDelim(primitiveText, cfg.Delimiter())
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to parse primitive dataset")
	}

	var levels map[string]rtk.JLPTLevel
	if cfg.Data.JLPTSource != "" {
		jlptSrc, err := ingest.Resolve(cfg.Data.JLPTSource, cfg.Data.CacheDir, logger.Logger)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to resolve JLPT source")
		}
		defer jlptSrc.Close()

		jlptText, err := jlptSrc.Text()
		if err != nil {
			return nil, nil, nil, err
		}
		levels, err = parser.ParseJLPT(jlptText)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to parse JLPT levels")
		}
	}

	return kanji, primitives, levels, nil
}

// loadGraph builds the graph from the configured datasets.
func loadGraph(cmd *cobra.Command) (*graph.Graph, *conf.Config, error) {
	cfg, err := conf.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load configuration")
	}

	kanji, primitives, levels, err := loadRecords(cfg)
	if err != nil {
		return nil, nil, err
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	builder := graph.NewBuilder(cfg.Resolver.Tables(), verbosity, logger.Logger)
	g, err := builder.Build(kanji, primitives, levels)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build graph")
	}
	return g, cfg, nil
}
