package locspec

import (
	"strings"
)

// linespecKeywords are the keywords that terminate a linespec and
// introduce event modifiers. "if" always terminates, since the
// condition following it cannot be predicted; the others only count
// when followed by whitespace and not immediately prefixing a longer
// word that itself starts with a keyword.
var linespecKeywords = []string{"if", "thread", "task", "-force-condition"}

// keywordAt returns the linespec keyword at the very beginning of s,
// or "" if there is none.
func keywordAt(s string) string {
	for i, kw := range linespecKeywords {
		if !strings.HasPrefix(s, kw) || len(s) == len(kw) || !isSpace(s[len(kw)]) {
			continue
		}
		if i != 0 {
			// Not a keyword if the following word begins with a
			// keyword but keeps going ("thread threadfoo").
			rest := s[skipSpaces(s, len(kw)):]
			ambiguous := false
			for _, next := range linespecKeywords {
				if strings.HasPrefix(rest, next) &&
					len(rest) != len(next) && !isSpace(rest[len(next)]) {
					ambiguous = true
					break
				}
			}
			if ambiguous {
				continue
			}
		}
		return kw
	}
	return ""
}

// LinespecLexer consumes the linespec portion of an input string.
// Resolving the linespec to program addresses is someone else's job;
// the lexer only has to know where the linespec ends.
type LinespecLexer interface {
	// Consume returns the number of bytes at the start of text that
	// belong to the linespec.
	Consume(text string) int
}

// KeywordLinespecLexer consumes input up to the first linespec keyword
// found at a toplevel word boundary, or to the end of the input.
// Quoted spans are skipped so a keyword inside quotes does not end the
// linespec.
type KeywordLinespecLexer struct{}

// Consume implements LinespecLexer.
func (KeywordLinespecLexer) Consume(text string) int {
	if keywordAt(text) != "" {
		return 0
	}
	pos := 0
	for pos < len(text) {
		if isSpace(text[pos]) {
			next := skipSpaces(text, pos)
			if keywordAt(text[next:]) != "" {
				// Leave the cursor at the keyword; the consumed
				// whitespace is trimmed from the spec text.
				return next
			}
			pos = next
			continue
		}
		if text[pos] == '"' || text[pos] == '\'' {
			if end := findEndQuote(text, pos+1, text[pos]); end >= 0 {
				pos = end + 1
				continue
			}
		}
		pos++
	}
	return pos
}
