package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize scans a field path expression and appends its tokens to dst.
// Whitespace between tokens is skipped. The returned tokens share their
// Bytes with src, except for quoted names which retain their quotes and
// are decoded by Token.String.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case '.':
			dst = append(dst, Token{Type: TDot, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"', '\'':
			sz, err := bsEscQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i))
			}
			dst = append(dst, Token{Type: TQuoted, Pos: doc.Pos(i), Bytes: src[i : i+sz]})
			i += sz
		case '\n':
			doc.nl(i)
			i++
		case ' ', '\t', '\r':
			i++
		default:
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && sz == 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, doc.Pos(i))
			}
			if !isIdentRune(r) {
				if unicode.IsSpace(r) {
					i += sz
					continue
				}
				return nil, UnexpectedErr(string(r), doc.Pos(i))
			}
			start := i
			digits := true
			for i < n {
				r, sz = utf8.DecodeRune(src[i:])
				if !isIdentRune(r) {
					break
				}
				if r < '0' || r > '9' {
					digits = false
				}
				i += sz
			}
			typ := TokenType(TIdent)
			if digits {
				typ = TInteger
			}
			dst = append(dst, Token{Type: typ, Pos: doc.Pos(start), Bytes: src[start:i]})
		}
	}
	return dst, nil
}
