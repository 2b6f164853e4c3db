package graph

import (
	"go.uber.org/zap"

	"github.com/teranos/rtkgraph/logger"
	"github.com/teranos/rtkgraph/rtk/resolve"
)

// Builder assembles a Graph from parsed records. It is stateless between
// Build calls and safe to reuse.
type Builder struct {
	tables    *resolve.Tables
	verbosity int
	log       *zap.SugaredLogger
}

// NewBuilder creates a graph builder. A nil tables falls back to the default
// disambiguation rules; a nil logger falls back to the package logger.
func NewBuilder(tables *resolve.Tables, verbosity int, log *zap.SugaredLogger) *Builder {
	if tables == nil {
		tables = resolve.DefaultTables()
	}
	if log == nil {
		log = logger.Logger
	}
	return &Builder{
		tables:    tables,
		verbosity: verbosity,
		log:       log.Named("graph.builder"),
	}
}
