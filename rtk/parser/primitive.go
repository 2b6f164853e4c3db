package parser

import (
	"github.com/teranos/rtkgraph/rtk"
)

// Primitives dataset layout (trailing fields optional):
//
//	asset-path, parent-frame?, unicode?, next-frame?, is-real-heisig?
const primitiveKeyColumn = "path"

// ParsePrimitives parses the raw primitives dataset text with the default
// delimiter.
func ParsePrimitives(text string) ([]rtk.PrimitiveRecord, error) {
	return ParsePrimitivesDelim(text, DefaultDelimiter)
}

// ParsePrimitivesDelim parses the raw primitives dataset text. A row is
// rejected only when the asset-path field is empty; absent trailing fields
// are treated as unset rather than padded. An optional header row is
// detected and skipped.
func ParsePrimitivesDelim(text string, delim rune) ([]rtk.PrimitiveRecord, error) {
	lines := splitLines(text)
	if len(lines) > 0 && hasHeader(lines[0].text, primitiveKeyColumn) {
		lines = lines[1:]
	}

	records := make([]rtk.PrimitiveRecord, 0, len(lines))
	for _, line := range lines {
		rec, err := parsePrimitiveRow(line, delim)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parsePrimitiveRow(line sourceLine, delim rune) (rtk.PrimitiveRecord, error) {
	fields := splitFields(line.text, delim)

	// Absent trailing fields are unset, not zero-padded.
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	if field(0) == "" {
		return rtk.PrimitiveRecord{}, NewParseError(line.num, "primitive row has no asset path")
	}

	parent, ok := parseOptionalInt(field(1))
	if !ok {
		return rtk.PrimitiveRecord{}, NewParseError(line.num, "parent frame is not numeric").WithField(field(1))
	}
	next, ok := parseOptionalInt(field(3))
	if !ok {
		return rtk.PrimitiveRecord{}, NewParseError(line.num, "next frame is not numeric").WithField(field(3))
	}

	return rtk.PrimitiveRecord{
		Path:        field(0),
		ParentFrame: parent,
		Unicode:     field(2),
		NextFrame:   next,
		RealHeisig:  parseTruthy(field(4)),
	}, nil
}
