package parser

import (
	"github.com/teranos/rtkgraph/rtk"
)

// Kanji dataset layout:
//
//	character, id5, id6, keyword5, keyword6, components, on-reading, kun-reading
const (
	kanjiColumns   = 8
	kanjiKeyColumn = "kanji"
)

// ParseKanji parses the raw kanji dataset text with the default delimiter.
func ParseKanji(text string) ([]rtk.KanjiRecord, error) {
	return ParseKanjiDelim(text, DefaultDelimiter)
}

// ParseKanjiDelim parses the raw kanji dataset text. Short rows are padded
// with empty fields up to the expected column count; a row is rejected when
// the character field is empty or when both alternate keyword fields are
// empty (padding protects against short rows, not against genuinely missing
// required data). An optional header row is detected and skipped.
func ParseKanjiDelim(text string, delim rune) ([]rtk.KanjiRecord, error) {
	lines := splitLines(text)
	if len(lines) > 0 && hasHeader(lines[0].text, kanjiKeyColumn) {
		lines = lines[1:]
	}

	records := make([]rtk.KanjiRecord, 0, len(lines))
	for _, line := range lines {
		rec, err := parseKanjiRow(line, delim)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseKanjiRow(line sourceLine, delim rune) (rtk.KanjiRecord, error) {
	fields := splitFields(line.text, delim)
	for len(fields) < kanjiColumns {
		fields = append(fields, "")
	}

	id5, ok := parseOptionalInt(fields[1])
	if !ok {
		return rtk.KanjiRecord{}, NewParseError(line.num, "5th-edition id is not numeric").WithField(fields[1])
	}
	id6, ok := parseOptionalInt(fields[2])
	if !ok {
		return rtk.KanjiRecord{}, NewParseError(line.num, "6th-edition id is not numeric").WithField(fields[2])
	}

	rec := rtk.KanjiRecord{
		Character:  fields[0],
		ID5:        id5,
		ID6:        id6,
		Keyword5:   fields[3],
		Keyword6:   fields[4],
		Components: fields[5],
		OnReading:  fields[6],
		KunReading: fields[7],
	}

	if rec.Character == "" {
		return rtk.KanjiRecord{}, NewParseError(line.num, "kanji row has no character")
	}
	if rec.Keyword5 == "" && rec.Keyword6 == "" {
		return rtk.KanjiRecord{}, NewParseError(line.num, "kanji row has no keyword in either edition").WithField(rec.Character)
	}
	return rec, nil
}
