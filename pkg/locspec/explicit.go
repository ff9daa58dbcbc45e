package locspec

import (
	"strings"

	"github.com/mmuman/binutils-gdb/pkg/logflags"
)

// CompletionInfo describes the state of a partially parsed explicit
// location, for use by an interactive suggestion engine. Offsets index
// into the original input string; -1 means unset.
type CompletionInfo struct {
	// LastOption is the start offset of the last option token seen.
	LastOption int
	// QuotedArgStart and QuotedArgEnd delimit a quoted argument of the
	// last option. QuotedArgEnd stays -1 while the quote is
	// unterminated.
	QuotedArgStart int
	QuotedArgEnd   int
	// SawExplicitOption is set once an option that takes an argument
	// has been seen.
	SawExplicitOption bool
}

func newCompletionInfo() *CompletionInfo {
	return &CompletionInfo{LastOption: -1, QuotedArgStart: -1, QuotedArgEnd: -1}
}

// explicitOptions are the explicit location options in the order they
// are matched. Matching uses the length of the token, so any
// truncation is accepted and an ambiguous abbreviation resolves to the
// first keyword in this order. The order is load-bearing: saved
// locations rely on it.
var explicitOptions = []string{"-source", "-function", "-qualified", "-line", "-label"}

// optionMatch reports whether opt is a prefix abbreviation of keyword.
func optionMatch(keyword, opt string) bool {
	return strings.HasPrefix(keyword, opt)
}

// ParseExplicit parses an explicit location from the beginning of s
// and returns it together with the unconsumed remainder of s. It
// returns a nil location, with no input consumed, when s does not
// start like an explicit location.
func (p *Parser) ParseExplicit(s string) (*Location, string, error) {
	loc, pos, err := p.parseExplicit(s, nil)
	if err != nil {
		return nil, "", err
	}
	if loc == nil {
		return nil, s, nil
	}
	return loc, s[pos:], nil
}

// CompleteExplicit parses as much of a partial explicit location as
// possible. It never fails: parsing stops at the first point strict
// parsing would have reported an error, and the completion info
// describes where an interactive caller should resume. The location is
// nil when s does not start like an explicit location.
func (p *Parser) CompleteExplicit(s string) (*Location, string, *CompletionInfo) {
	info := newCompletionInfo()
	loc, pos, _ := p.parseExplicit(s, info)
	if loc == nil {
		return nil, s, info
	}
	if logflags.Completion() {
		logflags.CompletionLogger().Debugf("completed %q up to offset %d (last option at %d)", s, pos, info.LastOption)
	}
	return loc, s[pos:], info
}

// parseExplicit is the mode-shared core of ParseExplicit and
// CompleteExplicit. comp is nil in strict mode.
func (p *Parser) parseExplicit(s string, comp *CompletionInfo) (*Location, int, error) {
	// Input beginning with '-' and a letter is an explicit location.
	// "-p" is reserved for probe locations.
	if len(s) < 2 || s[0] != '-' || !isAlpha(s[1]) || s[1] == 'p' {
		return nil, 0, nil
	}

	lang := p.language()
	sc := &scanner{input: s, lang: lang, comp: comp}
	explicit := &ExplicitPayload{}
	pos := 0

loop:
	// Process option/argument pairs. A leading comma stops processing:
	// the remaining input belongs to commands like dprintf that take
	// comma separated arguments after the location.
	for pos < len(s) && s[pos] != ',' {
		// These describe the last option, clear them on each
		// iteration.
		if comp != nil {
			comp.QuotedArgStart = -1
			comp.QuotedArgEnd = -1
		}

		// A keyword ends the explicit location.
		if lang.KeywordAt(s[pos:]) != "" {
			break
		}

		start := pos
		if comp != nil {
			comp.LastOption = start
		}

		opt, _, npos, err := sc.lexToken(pos, false)
		if err != nil {
			return nil, 0, err
		}
		pos = skipSpaces(s, npos)

		var arg string
		haveArg := false
		needArg := false
		setArg := func(tok string, ok bool) string {
			if comp != nil {
				// The options that take arguments are exactly the
				// explicit location options.
				comp.SawExplicitOption = true
			}
			arg, haveArg = tok, ok
			needArg = true
			return arg
		}

		switch {
		case optionMatch("-source", opt):
			tok, ok, npos, err := sc.lexToken(pos, true)
			if err != nil {
				return nil, 0, err
			}
			pos = npos
			explicit.SourceFilename = setArg(tok, ok)

		case optionMatch("-function", opt):
			tok, ok, npos, err := sc.lexFunctionToken(pos)
			if err != nil {
				return nil, 0, err
			}
			pos = npos
			explicit.FunctionName = setArg(tok, ok)

		case optionMatch("-qualified", opt):
			explicit.FuncMatchType = MatchFull

		case optionMatch("-line", opt):
			tok, ok, npos, err := sc.lexToken(pos, false)
			if err != nil {
				return nil, 0, err
			}
			pos = skipSpaces(s, npos)
			setArg(tok, ok)
			if haveArg {
				off, err := ParseLineOffset(arg)
				if err != nil {
					if comp == nil {
						return nil, 0, err
					}
					break loop
				}
				explicit.LineOffset = off
				continue
			}

		case optionMatch("-label", opt):
			tok, ok, npos, err := sc.lexToken(pos, true)
			if err != nil {
				return nil, 0, err
			}
			pos = npos
			explicit.LabelName = setArg(tok, ok)

		case len(opt) > 1 && opt[0] == '-' && !isDigit(opt[1]):
			// Only tokens that look like option strings are invalid
			// arguments; anything else ends the explicit location.
			if comp == nil {
				return nil, 0, InvalidOptionError{opt}
			}
			break loop

		default:
			// End of the explicit location, the rest of the input
			// belongs to whatever follows it.
			pos = start
			break loop
		}

		pos = skipSpaces(s, pos)

		// Erroring after the fact gives a better experience: a
		// clearly invalid option is reported before a merely missing
		// argument.
		if needArg && !haveArg {
			if comp == nil {
				return nil, 0, MissingArgumentError{opt}
			}
			break loop
		}
	}

	// A source filename alone cannot anchor an event.
	if comp == nil &&
		explicit.SourceFilename != "" &&
		explicit.FunctionName == "" &&
		explicit.LabelName == "" &&
		explicit.LineOffset.Sign == OffsetUnknown {
		return nil, 0, UnanchoredFilenameError{}
	}

	return NewExplicitLocation(explicit), pos, nil
}
