package locspec

import (
	"strings"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// skipSpaces returns the position of the first non-whitespace byte of
// s at or after pos.
func skipSpaces(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// findEndQuote returns the index of the quote character endQuote in s
// at or after pos that is outside any nested single or double quoted
// run, or -1 if there is none. Only a single level of nesting is
// tracked: inside a nested run the sought quote character is inert and
// a backslash escapes the following character.
func findEndQuote(s string, pos int, endQuote byte) int {
	var nested byte
	for i := pos; i < len(s); i++ {
		c := s[i]
		switch {
		case nested != 0:
			if c == nested {
				nested = 0
			} else if c == '\\' && i+1 < len(s) {
				i++
			}
		case c == endQuote:
			return i
		case c == '"' || c == '\'':
			nested = c
		}
	}
	return -1
}

// findToplevelChar returns the index of the first occurrence of c in s
// at or after pos that is outside quoted strings and outside any
// parenthesized or template argument list, or -1 if there is none.
func findToplevelChar(s string, pos int, c byte) int {
	var quoted byte
	depth := 0
	for i := pos; i < len(s); i++ {
		ch := s[i]
		switch {
		case quoted != 0:
			if ch == quoted {
				quoted = 0
			} else if ch == '\\' && i+1 < len(s) {
				i++
			}
		case ch == c && depth == 0:
			return i
		case ch == '"' || ch == '\'':
			quoted = ch
		case ch == '(' || ch == '<':
			depth++
		case (ch == ')' || ch == '>') && depth > 0:
			depth--
		}
	}
	return -1
}

// isOperatorName reports whether the text of s before index delim,
// with trailing spaces skipped, ends with the operator marker at a
// token boundary. In that case the character at delim is part of an
// operator name such as "operator-" rather than a delimiter. The
// backward scan never reads before start.
func isOperatorName(s string, start, delim int, marker string) bool {
	if marker == "" || delim < 0 || delim-start < len(marker) {
		return false
	}
	p := delim
	for p > start && isSpace(s[p-1]) {
		p--
	}
	if p-start < len(marker) {
		return false
	}
	p -= len(marker)
	if s[p:p+len(marker)] != marker {
		return false
	}
	return p == start || !isIdentChar(s[p-1])
}

// skipOperatorFalsePositives advances past delimiter candidates that
// are really part of an operator name, returning the index of the
// first real occurrence of the delimiter at or after found, or -1.
// found is -1 if no candidate was found in the first place.
func skipOperatorFalsePositives(s string, start, found int, marker string) int {
	if found < 0 {
		return found
	}
	c := s[found]
	for found >= 0 && isOperatorName(s, start, found, marker) {
		if c == '-' && found+1 < len(s) && s[found+1] == '-' {
			start = found + 2
		} else {
			start = found + 1
		}
		found = findToplevelChar(s, start, c)
	}
	return found
}

// firstOf returns the smaller of two candidate indexes, ignoring -1.
func firstOf(first, second int) int {
	if first < 0 {
		return second
	}
	if second >= 0 && second < first {
		return second
	}
	return first
}

// scanner scans explicit location input. comp is nil in strict mode;
// when it is set scanning never fails and quoted argument spans are
// recorded for tracked tokens.
type scanner struct {
	input string
	lang  Language
	comp  *CompletionInfo
}

// lexToken lexes one generic token at pos and returns it together with
// the position after it. ok is false if no input was consumed. track
// enables completion span recording for quoted arguments.
func (sc *scanner) lexToken(pos int, track bool) (tok string, ok bool, npos int, err error) {
	s := sc.input
	if pos >= len(s) {
		return "", false, pos, nil
	}
	start := pos

	// A quoted token runs to the matching close quote.
	if strings.IndexByte(sc.lang.QuoteChars(), s[pos]) >= 0 {
		quote := s[pos]
		if track && sc.comp != nil {
			sc.comp.QuotedArgStart = pos
		}
		end := findEndQuote(s, pos+1, quote)
		if end < 0 {
			if sc.comp == nil {
				return "", false, pos, UnmatchedQuoteError{s[start:]}
			}
			// Completion: the rest of the input is the token and the
			// quote is left marked as unterminated.
			return s[pos+1:], true, len(s), nil
		}
		if track && sc.comp != nil {
			sc.comp.QuotedArgEnd = end
		}
		return s[pos+1 : end], true, end + 1, nil
	}

	// Signed tokens (line offsets and option strings) never contain
	// whitespace or commas.
	if s[pos] == '-' || s[pos] == '+' {
		for pos < len(s) && s[pos] != ',' && !isSpace(s[pos]) {
			pos++
		}
		return s[start:pos], pos > start, pos, nil
	}

	// Numbers end at the first non-digit.
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	if pos >= len(s) || isSpace(s[pos]) || s[pos] == ',' {
		return s[start:pos], pos > start, pos, nil
	}

	// Everything else ends at whitespace, a comma or a linespec
	// keyword, except that an operator name like "operator-" is
	// skipped atomically so its '-' or ',' is not taken for a
	// delimiter.
	pos = start
	marker := sc.lang.OperatorMarker()
	for pos < len(s) && s[pos] != ',' && !isSpace(s[pos]) && sc.lang.KeywordAt(s[pos+1:]) == "" {
		if marker != "" && strings.HasPrefix(s[pos:], marker) {
			pos += len(marker)
		}
		pos++
		if pos > len(s) {
			pos = len(s)
		}
	}
	return s[start:pos], pos > start, pos, nil
}

// lexFunctionToken lexes a -function argument at pos. Function names
// may contain characters that elsewhere delimit options, like the ','
// and '-' of C++ "operator," and "operator-", so the token runs to the
// earliest toplevel delimiter that is not part of an operator name.
func (sc *scanner) lexFunctionToken(pos int) (tok string, ok bool, npos int, err error) {
	s := sc.input
	if pos >= len(s) {
		return "", false, pos, nil
	}
	start := pos

	// Quoted, unless the language spells operators with a leading
	// quote character (Ada `"+"`), in which case the quote belongs to
	// the function name.
	if strings.IndexByte(sc.lang.QuoteChars(), s[pos]) >= 0 && !sc.lang.QuoteIsOperator(s[pos:]) {
		quote := s[pos]
		if sc.comp != nil {
			sc.comp.QuotedArgStart = pos
		}
		end := findToplevelChar(s, pos+1, quote)
		if end < 0 {
			if sc.comp == nil {
				return "", false, pos, UnmatchedQuoteError{s[start:]}
			}
			return s[pos+1:], true, len(s), nil
		}
		if sc.comp != nil {
			sc.comp.QuotedArgEnd = end
		}
		return s[pos+1 : end], true, end + 1, nil
	}

	marker := sc.lang.OperatorMarker()

	comma := findToplevelChar(s, start, ',')

	// "-function -myfunc" lexes "-myfunc" as the function name: a
	// hyphen at the very start is not a delimiter, only a later one.
	var hyphen int
	if s[start] == '-' {
		hyphen = findToplevelChar(s, start+1, '-')
	} else {
		hyphen = findToplevelChar(s, start, '-')
	}

	comma = skipOperatorFalsePositives(s, start, comma, marker)
	hyphen = skipOperatorFalsePositives(s, start, hyphen, marker)

	end := firstOf(hyphen, comma)

	// A linespec keyword after a toplevel space also ends the token.
	ws := findToplevelChar(s, start, ' ')
	for ws >= 0 && sc.lang.KeywordAt(s[ws+1:]) == "" {
		ws = findToplevelChar(s, ws+1, ' ')
	}
	if ws >= 0 {
		end = firstOf(end, ws+1)
	}

	if end < 0 {
		end = len(s)
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end], end > start, end, nil
}
