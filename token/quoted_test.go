package token

import "testing"

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		``,
		`a`,
		`odd name`,
		`a.b`,
		`a[3]`,
		`"`,
		`'`,
		`\`,
		"\t\n\v\r\b",
		`"""''`,
		`∞∞`,
		"�",
		`per.iod"quote`,
	} {
		do(s, t)
	}
}

func do(v string, t *testing.T) {
	q := Quote(v)
	uq, err := Unquote(q)
	if err != nil {
		t.Errorf("error unquoting %q (from %q): %v", q, v, err)
		return
	}
	if uq != v {
		t.Errorf("unquote(quote(%q)) = %q", v, uq)
	}
	if NeedsQuote(v) {
		t.Logf("%q needs quote\n", v)
	}
}

func TestNeedsQuote(t *testing.T) {
	for _, s := range []string{"a", "abc", "user_name", "a-b", "$ref", "0", "12"} {
		if NeedsQuote(s) {
			t.Errorf("%q should not need quote", s)
		}
	}
	for _, s := range []string{"", "a.b", "a[0]", "a]", "a b", `a"b`, "a\tb"} {
		if !NeedsQuote(s) {
			t.Errorf("%q should need quote", s)
		}
	}
}

func TestUnquoteErrs(t *testing.T) {
	for _, s := range []string{`"abc`, `"abc'`, `"ab"x`, `'`, `"\q"`} {
		if _, err := Unquote(s); err == nil {
			t.Errorf("%q: expected unquote error", s)
		}
	}
}
