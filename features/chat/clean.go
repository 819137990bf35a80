package chat

import "strings"

// roleMarkers are instruction-format artifacts some hosted models leak into
// their output.
var roleMarkers = []string{"[INST]", "[/INST]", "<s>", "</s>"}

const terminalPunct = ".!?"

// CleanResponse normalizes a raw provider response: role markers stripped,
// leading punctuation trimmed, and a trailing incomplete sentence cut back to
// the last terminal punctuation when that point lies past the midpoint of
// the answer.
func CleanResponse(s string) string {
	for _, marker := range roleMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, ",.;:!?-)")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if !strings.ContainsRune(terminalPunct, rune(s[len(s)-1])) {
		if idx := strings.LastIndexAny(s, terminalPunct); idx > len(s)/2 {
			s = s[:idx+1]
		}
	}
	return s
}
