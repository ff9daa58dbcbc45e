package locspec

import (
	"strings"
)

// Language describes the lexical rules of a source language that
// matter for location parsing: which characters open quoted arguments,
// how the language spells operator names, and which keywords terminate
// a location.
type Language interface {
	// Name returns the name of the language.
	Name() string
	// QuoteChars returns the characters that open a quoted argument.
	QuoteChars() string
	// OperatorMarker returns the spelled out operator prefix of the
	// language ("operator" for C++) or "" if the language has none. A
	// '-' or ',' directly following the marker is part of an operator
	// name, not a delimiter.
	OperatorMarker() string
	// QuoteIsOperator reports whether text, which begins with a quote
	// character, spells an operator of the language rather than
	// opening a string. Ada writes operators inside double quotes:
	// "+", "and", "abs".
	QuoteIsOperator(text string) bool
	// KeywordAt returns the linespec keyword starting at the beginning
	// of text, or "" if there is none.
	KeywordAt(text string) string
}

type language struct {
	name     string
	operator string
}

func (l *language) Name() string                 { return l.name }
func (l *language) QuoteChars() string           { return `"'` }
func (l *language) OperatorMarker() string       { return l.operator }
func (l *language) QuoteIsOperator(string) bool  { return false }
func (l *language) KeywordAt(text string) string { return keywordAt(text) }

type adaLanguage struct {
	language
}

// adaOperators are the operator names Ada spells inside double quotes.
var adaOperators = []string{
	"=", "/=", "<=", ">=", "<", ">",
	"+", "-", "*", "/", "**", "&",
	"mod", "rem", "and", "or", "xor", "abs", "not",
}

func (l *adaLanguage) QuoteIsOperator(text string) bool {
	if len(text) < 3 || text[0] != '"' {
		return false
	}
	for _, op := range adaOperators {
		if strings.HasPrefix(text[1:], op+`"`) {
			return true
		}
	}
	return false
}

// Languages with location-relevant lexical rules.
var (
	CLanguage   Language = &language{name: "c"}
	CPlusPlus   Language = &language{name: "c++", operator: "operator"}
	AdaLanguage Language = &adaLanguage{language{name: "ada"}}
)

// LanguageByName returns the language table registered under name, or
// nil if there is none.
func LanguageByName(name string) Language {
	switch strings.ToLower(name) {
	case "c":
		return CLanguage
	case "c++", "cpp", "cplusplus":
		return CPlusPlus
	case "ada":
		return AdaLanguage
	}
	return nil
}
