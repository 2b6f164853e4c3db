package conf

import (
	"github.com/teranos/rtkgraph/rtk/resolve"
)

// Config represents the core rtkgraph configuration
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	Tree     TreeConfig     `mapstructure:"tree"`
}

// DataConfig points at the record sources consumed by the parser
type DataConfig struct {
	KanjiSource     string `mapstructure:"kanji_source"`     // path or URL of the kanji CSV
	PrimitiveSource string `mapstructure:"primitive_source"` // path or URL of the primitive CSV
	JLPTSource      string `mapstructure:"jlpt_source"`      // path or URL of the JLPT level JSON (optional)
	CacheDir        string `mapstructure:"cache_dir"`        // where remote sources are fetched to
	Delimiter       string `mapstructure:"delimiter"`        // single field delimiter (default ",")
}

// ResolverConfig layers user disambiguation rules over the built-in tables
type ResolverConfig struct {
	Overrides   map[string]string `mapstructure:"overrides"`    // keyword = "character"
	PreferKanji []string          `mapstructure:"prefer_kanji"` // keywords resolved kanji-first
	Excluded    []string          `mapstructure:"excluded"`     // kanji whose keyword means the primitive
}

// TreeConfig bounds tree builds and referer pages
type TreeConfig struct {
	MaxDepth        int `mapstructure:"max_depth"`         // descendant tree depth bound (default: 3)
	RefererPageSize int `mapstructure:"referer_page_size"` // referers per page (default: 10)
}

// Tables merges the user rules over the default disambiguation tables.
func (r ResolverConfig) Tables() *resolve.Tables {
	return resolve.DefaultTables().Merge(r.Excluded, r.PreferKanji, r.Overrides)
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
