package locspec

import (
	"testing"
)

func TestFindEndQuote(t *testing.T) {
	for _, tc := range []struct {
		in    string
		quote byte
		want  int
	}{
		{`abc'`, '\'', 3},
		{`abc`, '\'', -1},
		{`a"b"c'`, '\'', 5},     // nested double quoted run
		{`a"b\"x"c'`, '\'', 8},  // escape inside nested run
		{`a"b'c"d'`, '\'', 7},   // sought quote inert inside nested run
		{`a"bc`, '\'', -1},      // nested run never closes
		{``, '\'', -1},
	} {
		if got := findEndQuote(tc.in, 0, tc.quote); got != tc.want {
			t.Errorf("findEndQuote(%q, %q) = %d, want %d", tc.in, tc.quote, got, tc.want)
		}
	}
}

func TestFindToplevelChar(t *testing.T) {
	for _, tc := range []struct {
		in   string
		c    byte
		want int
	}{
		{"a,b", ',', 1},
		{"f(a, b), x", ',', 7},           // comma inside parens is nested
		{"m<int, char>, x", ',', 12},     // comma inside template args is nested
		{`"a,b",c`, ',', 5},              // comma inside quotes is nested
		{"operator<<", '-', -1},
		{"a-b", '-', 1},
	} {
		if got := findToplevelChar(tc.in, 0, tc.c); got != tc.want {
			t.Errorf("findToplevelChar(%q, %q) = %d, want %d", tc.in, tc.c, got, tc.want)
		}
	}
}

func TestKeywordAt(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"if x > 3", "if"},
		{"if", ""}, // keywords need a following space
		{"iffy thing", ""},
		{"thread 3", "thread"},
		{"task 1", "task"},
		{"-force-condition x", "-force-condition"},
		{"thread threadfoo", ""}, // next word extends a keyword
		{"thread thread ", "thread"},
		{"main.c:12", ""},
	} {
		if got := keywordAt(tc.in); got != tc.want {
			t.Errorf("keywordAt(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLexTokenGeneric(t *testing.T) {
	for _, tc := range []struct {
		in      string
		tok     string
		npos    int
	}{
		{"main.c rest", "main.c", 6},
		{"42,x", "42", 2},
		{"+21 x", "+21", 3},
		{"-line 5", "-line", 5},
		{"'quoted arg' x", "quoted arg", 12},
		{"operator-,x", "operator-", 9},  // operator name skipped atomically
		{"operator, next", "operator,", 9},
		{"foo if x", "foo", 3},           // stops before a keyword
	} {
		sc := &scanner{input: tc.in, lang: CPlusPlus}
		tok, ok, npos, err := sc.lexToken(0, false)
		if err != nil {
			t.Fatalf("lexToken(%q): %v", tc.in, err)
		}
		if !ok || tok != tc.tok || npos != tc.npos {
			t.Errorf("lexToken(%q) = %q, %v, %d, want %q, true, %d", tc.in, tok, ok, npos, tc.tok, tc.npos)
		}
	}
}

func TestLexTokenUnmatchedQuote(t *testing.T) {
	sc := &scanner{input: "'abc", lang: CPlusPlus}
	_, _, _, err := sc.lexToken(0, false)
	if _, ok := err.(UnmatchedQuoteError); !ok {
		t.Fatalf("expected UnmatchedQuoteError, got %v", err)
	}

	// In completion mode the rest of the input becomes the token and
	// the quote is recorded as unterminated.
	info := newCompletionInfo()
	sc = &scanner{input: "'abc", lang: CPlusPlus, comp: info}
	tok, ok, npos, err := sc.lexToken(0, true)
	if err != nil {
		t.Fatalf("completion lexToken: %v", err)
	}
	if !ok || tok != "abc" || npos != 4 {
		t.Errorf("completion lexToken = %q, %v, %d, want \"abc\", true, 4", tok, ok, npos)
	}
	if info.QuotedArgStart != 0 || info.QuotedArgEnd != -1 {
		t.Errorf("quoted span = %d..%d, want 0..-1", info.QuotedArgStart, info.QuotedArgEnd)
	}
}

func TestLexFunctionToken(t *testing.T) {
	for _, tc := range []struct {
		in  string
		tok string
	}{
		{"main", "main"},
		{"main -line 3", "main"},
		{"main,arg", "main"},
		{"operator- -line 3", "operator-"},
		{"operator, -label x", "operator,"},
		{"fn(int, char) -line 3", "fn(int, char)"},
		{"-myfunc", "-myfunc"},        // leading hyphen is not a delimiter
		{"-myfunc -line 3", "-myfunc"},
		{"ns::fn(int) if x", "ns::fn(int)"},
		{"'op name' rest", "op name"},
	} {
		sc := &scanner{input: tc.in, lang: CPlusPlus}
		tok, ok, _, err := sc.lexFunctionToken(0)
		if err != nil {
			t.Fatalf("lexFunctionToken(%q): %v", tc.in, err)
		}
		if !ok || tok != tc.tok {
			t.Errorf("lexFunctionToken(%q) = %q, %v, want %q, true", tc.in, tok, ok, tc.tok)
		}
	}
}

func TestLexFunctionTokenAdaOperator(t *testing.T) {
	// Ada spells operators inside double quotes; the quote belongs to
	// the function name instead of opening a string.
	sc := &scanner{input: `"+" -line 3`, lang: AdaLanguage}
	tok, ok, _, err := sc.lexFunctionToken(0)
	if err != nil {
		t.Fatalf("lexFunctionToken: %v", err)
	}
	if !ok || tok != `"+"` {
		t.Errorf("lexFunctionToken = %q, %v, want %q, true", tok, ok, `"+"`)
	}
}

func TestParseLineOffset(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want LineOffset
	}{
		{"5", LineOffset{OffsetNone, 5}},
		{"+3", LineOffset{OffsetPlus, 3}},
		{"-42", LineOffset{OffsetMinus, 42}},
		{"+", LineOffset{OffsetPlus, 0}},
	} {
		got, err := ParseLineOffset(tc.in)
		if err != nil {
			t.Fatalf("ParseLineOffset(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseLineOffset(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseLineOffset("+x"); err == nil {
		t.Errorf("ParseLineOffset(\"+x\"): expected error")
	}
	if _, err := ParseLineOffset("abc"); err == nil {
		t.Errorf("ParseLineOffset(\"abc\"): expected error")
	}
}
