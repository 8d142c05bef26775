package fieldpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fieldpath/token"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Segment
	}{
		{
			name:  "single name",
			input: "a",
			want:  &Segment{Name: stringPtr("a")},
		},
		{
			name:  "dotted names",
			input: "a.b.c",
			want: &Segment{
				Name: stringPtr("a"),
				Child: &Segment{
					Name: stringPtr("b"),
					Child: &Segment{
						Name: stringPtr("c"),
					},
				},
			},
		},
		{
			name:  "array index",
			input: "a[3]",
			want: &Segment{
				Name: stringPtr("a"),
				Child: &Segment{
					Index: intPtr(3),
				},
			},
		},
		{
			name:  "mixed",
			input: "a.b[3].c",
			want: &Segment{
				Name: stringPtr("a"),
				Child: &Segment{
					Name: stringPtr("b"),
					Child: &Segment{
						Index: intPtr(3),
						Child: &Segment{
							Name: stringPtr("c"),
						},
					},
				},
			},
		},
		{
			name:  "consecutive indexes",
			input: "a[0][1]",
			want: &Segment{
				Name: stringPtr("a"),
				Child: &Segment{
					Index: intPtr(0),
					Child: &Segment{
						Index: intPtr(1),
					},
				},
			},
		},
		{
			name:  "quoted name",
			input: `"odd name".x`,
			want: &Segment{
				Name:   stringPtr("odd name"),
				Quoted: true,
				Child: &Segment{
					Name: stringPtr("x"),
				},
			},
		},
		{
			name:  "quoted reserved characters",
			input: `'a.b[0]'.c`,
			want: &Segment{
				Name:   stringPtr("a.b[0]"),
				Quoted: true,
				Child: &Segment{
					Name: stringPtr("c"),
				},
			},
		},
		{
			name:  "numeric name",
			input: "a.2",
			want: &Segment{
				Name: stringPtr("a"),
				Child: &Segment{
					Name: stringPtr("2"),
				},
			},
		},
	}
	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			got, err := parsePath(tst.input)
			if err != nil {
				t.Fatalf("parsePath(%q): %v", tst.input, err)
			}
			if d := cmp.Diff(tst.want, got); d != "" {
				t.Errorf("parsePath(%q) mismatch (-want +got):\n%s", tst.input, d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		line  int
		col   int
	}{
		{"a..b", 1, 2},
		{"[", 1, 0},
		{"a.", 1, 1},
		{"a[b]", 1, 2},
		{"a[1", 1, 2},
		{"a[]", 1, 2},
		{"a]", 1, 1},
		{"a b", 1, 2},
		{"a[-1]", 1, 2},
		{"a[4294967296]", 1, 2},
	}
	for _, tst := range tests {
		_, err := parsePath(tst.input)
		if err == nil {
			t.Errorf("parsePath(%q): expected error", tst.input)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("parsePath(%q): error %v does not wrap ErrParse", tst.input, err)
		}
		pe := &ParseError{}
		if !errors.As(err, &pe) {
			t.Errorf("parsePath(%q): error %v is not a *ParseError", tst.input, err)
			continue
		}
		if pe.Line != tst.line || pe.Col != tst.col {
			t.Errorf("parsePath(%q): error at %d:%d, want %d:%d (%v)",
				tst.input, pe.Line, pe.Col, tst.line, tst.col, err)
		}
	}
}

func TestParseErrorAccumulates(t *testing.T) {
	_, err := parsePath("a..b..c")
	if err == nil {
		t.Fatal("expected error")
	}
	pe := &ParseError{}
	if !errors.As(err, &pe) {
		t.Fatalf("not a *ParseError: %v", err)
	}
	if len(pe.Errs()) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(pe.Errs()), pe.Errs())
	}
	if pe.Col != 2 {
		t.Errorf("first error at col %d, want 2", pe.Col)
	}
}

func TestParseTokenizeCause(t *testing.T) {
	_, err := parsePath(`"abc`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
	if !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("error %v does not wrap the tokenizer cause", err)
	}
}
