package fieldpath

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/fieldpath/debug"
	"github.com/signadot/fieldpath/token"
)

// parsePath runs the tokenizer and the path grammar over text, returning
// the root segment of the chain. The grammar is
//
//	path := segment ( '.' segment | '[' integer ']' )*
//
// where segment is a bare or quoted name. Syntax errors are accumulated
// rather than aborting at the first, and surface as a *ParseError built
// from the first one.
func parsePath(text string) (*Segment, error) {
	toks, err := token.Tokenize(nil, []byte(text))
	if err != nil {
		if debug.Parse() {
			debug.Logf("fieldpath: tokenize %q: %v", text, err)
		}
		return nil, tokenizeError(err)
	}
	p := &pathParser{toks: toks}
	root := p.parsePath()
	if pe := p.parseError(); pe != nil {
		if debug.Parse() {
			debug.Logf("fieldpath: parse %q: %v", text, pe)
		}
		return nil, pe
	}
	return root, nil
}

// tokenizeError wraps a tokenizer failure in the same *ParseError kind
// the grammar produces, carrying the tokenizer error as cause.
func tokenizeError(err error) error {
	pe := &ParseError{Line: 1, Msg: err.Error(), errs: []error{err}}
	te := &token.TokenizeErr{}
	if errors.As(err, &te) {
		pe.Line, pe.Col = te.Pos.LineCol()
		pe.Msg = te.Err.Error()
	}
	return pe
}

type pathParser struct {
	toks []token.Token
	i    int
	errs []posErr
}

type posErr struct {
	line, col int
	err       error
}

func (p *pathParser) errorf(pos *token.Pos, format string, args ...any) {
	line, col := 1, 0
	if pos != nil {
		line, col = pos.LineCol()
	}
	p.errs = append(p.errs, posErr{line: line, col: col, err: fmt.Errorf(format, args...)})
}

func (p *pathParser) parseError() *ParseError {
	if len(p.errs) == 0 {
		return nil
	}
	first := p.errs[0]
	es := make([]error, len(p.errs))
	for i := range p.errs {
		es[i] = p.errs[i].err
	}
	return &ParseError{
		Line: first.line,
		Col:  first.col,
		Msg:  first.err.Error(),
		errs: es,
	}
}

func (p *pathParser) parsePath() *Segment {
	root := p.name("field name")
	leaf := root
	for p.i < len(p.toks) {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TDot:
			p.i++
			leaf = attach(leaf, p.name("field name after '.'"))
		case token.TLSquare:
			p.i++
			leaf = attach(leaf, p.index())
		default:
			p.errorf(t.Pos, "unexpected %q", t.String())
			p.i++
		}
	}
	return root
}

// attach links child under leaf and returns the new leaf. Either side may
// be nil when an error was already recorded for it.
func attach(leaf, child *Segment) *Segment {
	if child == nil {
		return leaf
	}
	if leaf == nil {
		return child
	}
	leaf.Child = child
	return child
}

func (p *pathParser) name(what string) *Segment {
	if p.i >= len(p.toks) {
		p.errorf(p.eofPos(), "expected %s at end of path", what)
		return nil
	}
	t := &p.toks[p.i]
	switch t.Type {
	case token.TIdent, token.TInteger:
		p.i++
		return newNameSegment(string(t.Bytes), false)
	case token.TQuoted:
		p.i++
		return newNameSegment(t.String(), true)
	default:
		// leave the token for the caller's loop to consume
		p.errorf(t.Pos, "expected %s, got %q", what, t.String())
		return nil
	}
}

func (p *pathParser) index() *Segment {
	if p.i >= len(p.toks) {
		p.errorf(p.eofPos(), "expected array index at end of path")
		return nil
	}
	t := &p.toks[p.i]
	if t.Type != token.TInteger {
		p.errorf(t.Pos, "expected array index, got %q", t.String())
		return nil
	}
	p.i++
	u, err := strconv.ParseUint(string(t.Bytes), 10, 31)
	if err != nil {
		p.errorf(t.Pos, "invalid array index %q: %v", string(t.Bytes), err)
		return nil
	}
	if p.i >= len(p.toks) || p.toks[p.i].Type != token.TRSquare {
		pos := p.eofPos()
		if p.i < len(p.toks) {
			pos = p.toks[p.i].Pos
		}
		p.errorf(pos, "expected ']' after array index")
		return newIndexSegment(int(u))
	}
	p.i++
	return newIndexSegment(int(u))
}

func (p *pathParser) eofPos() *token.Pos {
	if len(p.toks) == 0 {
		return nil
	}
	return p.toks[len(p.toks)-1].Pos
}
