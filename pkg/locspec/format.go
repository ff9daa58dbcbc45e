package locspec

import (
	"strconv"
	"strings"
)

// explicitToString renders an explicit location either as a sequence
// of options (asLinespec false) or as a colon separated linespec
// (asLinespec true). Fields are always emitted in source, function,
// label, line order and a separator is emitted before a field only if
// a prior field was already emitted.
func explicitToString(asLinespec bool, e *ExplicitPayload) string {
	var buf strings.Builder
	sep := byte(' ')
	if asLinespec {
		sep = ':'
	}
	needSep := false

	if e.SourceFilename != "" {
		if !asLinespec {
			buf.WriteString("-source ")
		}
		buf.WriteString(e.SourceFilename)
		needSep = true
	}

	if e.FunctionName != "" {
		if needSep {
			buf.WriteByte(sep)
		}
		if e.FuncMatchType == MatchFull {
			buf.WriteString("-qualified ")
		}
		if !asLinespec {
			buf.WriteString("-function ")
		}
		buf.WriteString(e.FunctionName)
		needSep = true
	}

	if e.LabelName != "" {
		if needSep {
			buf.WriteByte(sep)
		}
		if !asLinespec {
			buf.WriteString("-label ")
		}
		buf.WriteString(e.LabelName)
		needSep = true
	}

	if e.LineOffset.Sign != OffsetUnknown {
		if needSep {
			buf.WriteByte(sep)
		}
		if !asLinespec {
			buf.WriteString("-line ")
		}
		switch e.LineOffset.Sign {
		case OffsetPlus:
			buf.WriteByte('+')
		case OffsetMinus:
			buf.WriteByte('-')
		}
		buf.WriteString(strconv.Itoa(e.LineOffset.Offset))
	}

	return buf.String()
}

// ToLinespecString renders the explicit location in colon separated
// linespec form ("file.c:main:top:+3") instead of option form.
func (e *ExplicitPayload) ToLinespecString() string {
	return explicitToString(true, e)
}

// ParseLineOffset parses a line number with an optional leading sign
// ("5", "+5", "-5") into a LineOffset. Like atoi, conversion stops at
// the first non-digit, but a non-digit directly after the sign is an
// error. An absent number yields an offset of zero.
func ParseLineOffset(s string) (LineOffset, error) {
	off := LineOffset{Sign: OffsetNone}
	rest := s
	switch {
	case strings.HasPrefix(rest, "+"):
		off.Sign = OffsetPlus
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		off.Sign = OffsetMinus
		rest = rest[1:]
	}
	if rest != "" && !isDigit(rest[0]) {
		return LineOffset{}, MalformedLineOffsetError{s}
	}
	end := 0
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}
	if end > 0 {
		off.Offset, _ = strconv.Atoi(rest[:end])
	}
	return off, nil
}
