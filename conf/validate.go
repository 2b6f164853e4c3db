package conf

import (
	"unicode/utf8"

	"github.com/teranos/rtkgraph/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Delimiter must be exactly one rune; the parser splits on a single rune
	if c.Data.Delimiter != "" && utf8.RuneCountInString(c.Data.Delimiter) != 1 {
		return errors.Newf("data.delimiter must be a single character, got %q", c.Data.Delimiter)
	}

	if c.Tree.MaxDepth <= 0 {
		return errors.Newf("tree.max_depth must be > 0, got %d", c.Tree.MaxDepth)
	}
	if c.Tree.RefererPageSize <= 0 {
		return errors.Newf("tree.referer_page_size must be > 0, got %d", c.Tree.RefererPageSize)
	}

	// Override values name exactly one character
	for keyword, char := range c.Resolver.Overrides {
		if utf8.RuneCountInString(char) != 1 {
			return errors.Newf("resolver.overrides[%q] must be a single character, got %q", keyword, char)
		}
	}
	for _, char := range c.Resolver.Excluded {
		if utf8.RuneCountInString(char) != 1 {
			return errors.Newf("resolver.excluded entries must be single characters, got %q", char)
		}
	}

	return nil
}

// Delimiter returns the configured field delimiter as a rune.
func (c *Config) Delimiter() rune {
	if c.Data.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Data.Delimiter)
	return r
}
