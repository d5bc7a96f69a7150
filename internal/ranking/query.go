package ranking

import "strings"

// stopWords are query tokens carrying no relevance signal on their own.
// Conservative English function-word set; domain words always pass through.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "in": true, "into": true,
	"is": true, "it": true, "of": true, "on": true, "or": true, "that": true,
	"the": true, "to": true, "with": true, "your": true, "you": true,
	"this": true, "these": true, "their": true, "our": true, "will": true,
}

// ExtractQueryTerms builds the relevance query from the persona and job
// strings: lowercased, split on non-letter runes, stop words removed,
// deduplicated preserving first-seen order.
func ExtractQueryTerms(persona, job string) []string {
	raw := strings.FieldsFunc(strings.ToLower(persona+" "+job), func(r rune) bool {
		return !isWordRune(r)
	})

	seen := make(map[string]bool)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if len(token) < 2 || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		terms = append(terms, token)
	}
	return terms
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
