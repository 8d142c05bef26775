package token

import (
	"fmt"
)

type TokenType int

const (
	TIdent = iota
	TQuoted
	TInteger
	TDot
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TQuoted:  "TQuoted",
		TInteger: "TInteger",
		TDot:     "TDot",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text denoted by the token: quoted identifiers are
// unquoted and unescaped, everything else is the raw token text.
func (t *Token) String() string {
	if t.Type == TQuoted {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
