package locspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmuman/binutils-gdb/pkg/logflags"
)

// AddressEvaluator turns an address expression into a program address.
type AddressEvaluator interface {
	// AddressOf evaluates the expression at the start of text, which
	// begins with '*', and returns the address together with the
	// number of bytes of text consumed, including the '*'.
	AddressOf(text string) (uint64, int, error)
}

// ConstEvaluator evaluates literal address expressions ("*0x4000",
// "*16384"). It stands in for a full expression evaluator when no
// debug session is available.
type ConstEvaluator struct{}

// AddressOf implements AddressEvaluator.
func (ConstEvaluator) AddressOf(text string) (uint64, int, error) {
	end := 1
	for end < len(text) && !isSpace(text[end]) && text[end] != ',' {
		end++
	}
	addr, err := strconv.ParseUint(text[1:end], 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid address expression %q: %v", text[:end], err)
	}
	return addr, end, nil
}

// Parser parses event location strings. The zero value is a usable
// parser with C++ lexical rules and the default collaborators.
type Parser struct {
	// Language supplies the lexical rules used while scanning. Nil
	// defaults to C++.
	Language Language
	// Probes recognizes probe location specs. Nil defaults to the
	// static probe registry.
	Probes ProbeRegistry
	// Eval evaluates '*' address expressions. Nil defaults to the
	// constant evaluator.
	Eval AddressEvaluator
	// Linespec finds the end of the linespec portion of the input.
	// Nil defaults to the keyword lexer.
	Linespec LinespecLexer
}

func (p *Parser) language() Language {
	if p.Language != nil {
		return p.Language
	}
	return CPlusPlus
}

func (p *Parser) probes() ProbeRegistry {
	if p.Probes != nil {
		return p.Probes
	}
	return StaticProbeRegistry{}
}

func (p *Parser) eval() AddressEvaluator {
	if p.Eval != nil {
		return p.Eval
	}
	return ConstEvaluator{}
}

func (p *Parser) linespecLexer() LinespecLexer {
	if p.Linespec != nil {
		return p.Linespec
	}
	return KeywordLinespecLexer{}
}

// Parse parses an event location from the beginning of s and returns
// it together with the unconsumed remainder of the input (a trailing
// breakpoint condition, for example). matchType is the name match type
// applied when s turns out to be a plain linespec.
func (p *Parser) Parse(s string, matchType MatchType) (*Location, string, error) {
	loc, rest, err := p.ParseExplicit(s)
	if err != nil {
		return nil, "", err
	}
	if loc != nil {
		if !loc.Empty() {
			if logflags.LocSpec() {
				logflags.LocSpecLogger().Debugf("parsed %q as explicit location %q", s, loc.String())
			}
			return loc, rest, nil
		}
		// The input contained only flags like "-qualified". Keep the
		// match type they set and parse the rest as a basic location.
		matchType = loc.Explicit().FuncMatchType
		s = rest
	}
	return p.ParseBasic(s, matchType)
}

// ParseBasic parses a probe, address or linespec location, skipping
// the explicit location attempt of Parse.
func (p *Parser) ParseBasic(s string, matchType MatchType) (*Location, string, error) {
	if p.probes().Recognize(s) {
		// The whole remaining input is the probe spec.
		if logflags.LocSpec() {
			logflags.LocSpecLogger().Debugf("parsed %q as probe location", s)
		}
		return NewProbeLocation(s), "", nil
	}

	if strings.HasPrefix(s, "*") {
		addr, consumed, err := p.eval().AddressOf(s)
		if err != nil {
			return nil, "", err
		}
		if logflags.LocSpec() {
			logflags.LocSpecLogger().Debugf("parsed %q as address %#x", s[:consumed], addr)
		}
		return NewAddressLocation(addr, s[:consumed]), s[consumed:], nil
	}

	// Everything else is a linespec.
	consumed := p.linespecLexer().Consume(s)
	spec := strings.TrimRight(s[:consumed], " \t\n\v\f\r")
	if logflags.LocSpec() {
		logflags.LocSpecLogger().Debugf("parsed %q as linespec (match type %s)", spec, matchType)
	}
	return NewLinespecLocation(spec, matchType), s[consumed:], nil
}

// Parse parses s with the default parser configuration and wild name
// matching.
func Parse(s string) (*Location, string, error) {
	var p Parser
	return p.Parse(s, MatchWild)
}
