package parser

import (
	"encoding/json"

	"github.com/teranos/rtkgraph/errors"
	"github.com/teranos/rtkgraph/rtk"
)

// ParseJLPT parses the optional JSON object mapping kanji character to JLPT
// level tag. Entries with tags outside N1..N5 are dropped; downstream
// consumers already treat absent levels as "no preference", so an invalid
// tag degrades to absent rather than failing the whole lookup.
func ParseJLPT(raw string) (map[string]rtk.JLPTLevel, error) {
	var tags map[string]string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, errors.Wrap(err, "failed to parse JLPT level map")
	}

	levels := make(map[string]rtk.JLPTLevel, len(tags))
	for character, tag := range tags {
		level := rtk.JLPTLevel(tag)
		if !level.Known() {
			continue
		}
		levels[character] = level
	}
	return levels, nil
}
