package token

import (
	"errors"
	"testing"
)

type tokenizeTest struct {
	In    string
	Types []TokenType
	Texts []string
	Err   error
}

var tokenizeTests = []tokenizeTest{
	{
		In:    "a",
		Types: []TokenType{TIdent},
		Texts: []string{"a"},
	},
	{
		In:    "a.b",
		Types: []TokenType{TIdent, TDot, TIdent},
		Texts: []string{"a", ".", "b"},
	},
	{
		In:    "a[3]",
		Types: []TokenType{TIdent, TLSquare, TInteger, TRSquare},
		Texts: []string{"a", "[", "3", "]"},
	},
	{
		In:    "a.b[3].c",
		Types: []TokenType{TIdent, TDot, TIdent, TLSquare, TInteger, TRSquare, TDot, TIdent},
	},
	{
		In:    `"odd name".x`,
		Types: []TokenType{TQuoted, TDot, TIdent},
		Texts: []string{"odd name", ".", "x"},
	},
	{
		In:    `'a.b'`,
		Types: []TokenType{TQuoted},
		Texts: []string{"a.b"},
	},
	{
		In:    `"a\"b"`,
		Types: []TokenType{TQuoted},
		Texts: []string{`a"b`},
	},
	{
		In:    `"A"`,
		Types: []TokenType{TQuoted},
		Texts: []string{"A"},
	},
	{
		In:    "user_name-1.$ref",
		Types: []TokenType{TIdent, TDot, TIdent},
		Texts: []string{"user_name-1", ".", "$ref"},
	},
	{
		In:    "120",
		Types: []TokenType{TInteger},
	},
	{
		In:    "12a",
		Types: []TokenType{TIdent},
	},
	{
		In:    "a . b",
		Types: []TokenType{TIdent, TDot, TIdent},
	},
	{
		In:    "",
		Types: []TokenType{},
	},
	{
		// a genuine U+FFFD is an ordinary quotable rune
		In:    "\"�\"",
		Types: []TokenType{TQuoted},
		Texts: []string{"�"},
	},
	{
		In:    `"�"`,
		Types: []TokenType{TQuoted},
		Texts: []string{"�"},
	},
	{
		In:  "\xff",
		Err: ErrBadUTF8,
	},
	{
		In:  "\"a\xffb\"",
		Err: ErrBadUTF8,
	},
	{
		In:  `"abc`,
		Err: ErrUnterminated,
	},
	{
		In:  `"a\x"`,
		Err: ErrBadEscape,
	},
	{
		In:  `"\u00ZZ"`,
		Err: ErrBadUnicode,
	},
}

func TestTokenize(t *testing.T) {
	for _, tst := range tokenizeTests {
		toks, err := Tokenize(nil, []byte(tst.In))
		if tst.Err != nil {
			if err == nil {
				t.Errorf("%q: expected error %v, got tokens", tst.In, tst.Err)
				continue
			}
			if !errors.Is(err, tst.Err) {
				t.Errorf("%q: got error %v, want %v", tst.In, err, tst.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tst.In, err)
			continue
		}
		if len(toks) != len(tst.Types) {
			t.Errorf("%q: got %d tokens, want %d", tst.In, len(toks), len(tst.Types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tst.Types[i] {
				t.Errorf("%q: token %d type %s, want %s", tst.In, i, toks[i].Type, tst.Types[i])
			}
		}
		if tst.Texts == nil {
			continue
		}
		for i, want := range tst.Texts {
			if i >= len(toks) {
				break
			}
			if got := toks[i].String(); got != want {
				t.Errorf("%q: token %d text %q, want %q", tst.In, i, got, want)
			}
		}
	}
}

func TestTokenizeUnexpected(t *testing.T) {
	for _, in := range []string{"a#b", "a*", "(a)", "a!"} {
		if _, err := Tokenize(nil, []byte(in)); err == nil {
			t.Errorf("%q: expected tokenize error", in)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("ab.cd"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens", len(toks))
	}
	l, c := toks[2].Pos.LineCol()
	if l != 1 || c != 3 {
		t.Errorf("got line=%d col=%d, want 1:3", l, c)
	}
}
