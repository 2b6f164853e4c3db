package parser

import (
	"strconv"
	"strings"
)

// DefaultDelimiter is the field delimiter used by the published datasets.
const DefaultDelimiter = ','

// sourceLine is one non-blank line paired with its 1-based position in the
// raw input, so errors point at the original file rather than a compacted
// index.
type sourceLine struct {
	num  int
	text string
}

// splitLines splits raw text into lines, discarding blank lines but keeping
// original line numbers.
func splitLines(text string) []sourceLine {
	var lines []sourceLine
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		lines = append(lines, sourceLine{num: i + 1, text: trimmed})
	}
	return lines
}

// splitFields splits one row on delim. The delimiter is inert inside quoted
// segments, a doubled quote inside a quoted segment decodes to one literal
// quote, and every field is trimmed of surrounding whitespace.
func splitFields(row string, delim rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(row)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				// Escaped quote
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}

// hasHeader reports whether the first line looks like a header row: it
// mentions the dataset's key column name, case-insensitively.
func hasHeader(row, keyColumn string) bool {
	return strings.Contains(strings.ToLower(row), strings.ToLower(keyColumn))
}

// parseOptionalInt parses a numeric field where blank, "NULL" and "null"
// mean unset (0). Anything else must be an integer.
func parseOptionalInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NULL" || s == "null" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseTruthy accepts the small truthy vocabulary {"true", "1", "yes"}
// case-insensitively; anything else is false.
func parseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
