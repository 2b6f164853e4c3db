package graph

import (
	"strings"
	"unicode"
)

// sanitizeKey creates a safe, lowercase id component from a record key.
// Unicode letters and digits survive (kanji characters must remain
// distinguishable); everything else maps to an underscore.
// Example: "rice field" becomes "rice_field", "東" stays "東".
func sanitizeKey(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, key)
	return strings.ToLower(sanitized)
}

// NodeID derives the stable node id for a kind and record key. The same
// inputs always produce the same id; callers rely on this for UI keying.
func NodeID(kind NodeKind, key string) string {
	return string(kind) + "_" + sanitizeKey(key)
}
