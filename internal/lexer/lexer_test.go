package lexer

import "testing"

func collect(src string) []Token {
	l := New(src)
	var out []Token
	for {
		t := l.Next()
		out = append(out, t)
		if t.Type == EOF {
			return out
		}
	}
}

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertTypes(t *testing.T, got []TokenType, want []TokenType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSimpleAssignment(t *testing.T) {
	toks := collect("a = 3\n")
	assertTypes(t, types(toks), []TokenType{IDENT, ASSIGN, INT, NEWLINE, EOF})
}

func TestIndentDedent(t *testing.T) {
	src := "if a:\n    b = 1\n    c = 2\nd = 3\n"
	toks := collect(src)
	got := types(toks)
	want := []TokenType{
		IF, IDENT, COLON, NEWLINE,
		INDENT,
		IDENT, ASSIGN, INT, NEWLINE,
		IDENT, ASSIGN, INT, NEWLINE,
		DEDENT,
		IDENT, ASSIGN, INT, NEWLINE,
		EOF,
	}
	assertTypes(t, got, want)
}

func TestNestedIndentUnwindsFully(t *testing.T) {
	src := "if a:\n    if b:\n        c = 1\n"
	toks := collect(src)
	got := types(toks)
	want := []TokenType{
		IF, IDENT, COLON, NEWLINE,
		INDENT,
		IF, IDENT, COLON, NEWLINE,
		INDENT,
		IDENT, ASSIGN, INT, NEWLINE,
		DEDENT, DEDENT,
		EOF,
	}
	assertTypes(t, got, want)
}

func TestStringEscapes(t *testing.T) {
	toks := collect(`s = "a\nb"` + "\n")
	if toks[2].Type != STRING || toks[2].Literal != "a\nb" {
		t.Fatalf("got %q", toks[2])
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := collect("1 2.5 3e2 0\n")
	want := []struct {
		typ TokenType
		lit string
	}{
		{INT, "1"}, {FLOAT, "2.5"}, {FLOAT, "3e2"}, {INT, "0"},
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.lit {
			t.Fatalf("token %d: got %v %q want %v %q", i, toks[i].Type, toks[i].Literal, w.typ, w.lit)
		}
	}
}

func TestOperators(t *testing.T) {
	toks := collect("a += 1\nb //= 2\nc **= 3\n")
	got := types(toks)
	want := []TokenType{
		IDENT, PLUSEQ, INT, NEWLINE,
		IDENT, DSLASHEQ, INT, NEWLINE,
		IDENT, DSTAREQ, INT, NEWLINE,
		EOF,
	}
	assertTypes(t, got, want)
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "a = 1 # comment\n\n# full line\nb = 2\n"
	toks := collect(src)
	got := types(toks)
	want := []TokenType{
		IDENT, ASSIGN, INT, NEWLINE,
		IDENT, ASSIGN, INT, NEWLINE,
		EOF,
	}
	assertTypes(t, got, want)
}

func TestParenSuspendsIndentationAndNewline(t *testing.T) {
	src := "x = (1 +\n2)\n"
	toks := collect(src)
	got := types(toks)
	want := []TokenType{
		IDENT, ASSIGN, LPAREN, INT, PLUS, INT, RPAREN, NEWLINE, EOF,
	}
	assertTypes(t, got, want)
}

func TestKeywordLookup(t *testing.T) {
	cases := map[string]TokenType{
		"and": AND, "or": OR, "not": NOT, "if": IF, "else": ELSE,
		"def": DEF, "return": RETURN, "True": TRUE, "False": FALSE, "None": NONE,
		"somevar": IDENT,
	}
	for s, want := range cases {
		if got := LookupIdent(s); got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", s, got, want)
		}
	}
}
