package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isIdentRune reports whether r may appear in an unquoted name segment.
// The reserved path syntax runes ('.', '[', ']', quotes) and anything
// non-graphic must be written in quoted form.
func isIdentRune(r rune) bool {
	switch r {
	case '_', '-', '$':
		return true
	case utf8.RuneError:
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NeedsQuote reports whether a name segment must be quoted to re-parse.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for _, r := range v {
		if !isIdentRune(r) {
			return true
		}
	}
	return false
}

// Quote renders v as a double-quoted name segment, escaping reserved
// characters and control runes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote parses a fully quoted name segment, returning its text.
func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := bsEscQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// bsEscQuoted scans a backslash-escaped quoted name at the start of d and
// returns the number of bytes consumed, including both quotes. d[0] selects
// the quote character (single or double).
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, ErrUnterminated
	}
	quoteChar := rune(d[0])
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		// a genuine U+FFFD decodes with size 3 and is a valid name rune
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		start += sz
		switch r {
		case quoteChar:
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return start, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
			}
			escaped = false
		case '"', '\'', '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return start, ErrUnicodeControl
			}
			if escaped {
				return start, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes the text of a quoted name token, including its
// surrounding quotes. The input is assumed to have passed bsEscQuoted;
// malformed escapes decode to utf8.RuneError rather than failing.
func QuotedToString(d []byte) string {
	if len(d) < 2 {
		return ""
	}
	qc := rune(d[0])
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case qc:
			if !esc {
				return b.String()
			}
			b.WriteRune(qc)
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case '/':
				b.WriteByte('/')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			case 'u':
				if len(d[i:]) < 4 {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				dst := []byte{0, 0}
				if _, err := hex.Decode(dst, d[i:i+4]); err != nil {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
				i += 4
			default:
				b.WriteRune(utf8.RuneError)
			}
		}
	}
	return b.String()
}
