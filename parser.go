package fieldpath

import (
	"fmt"

	"github.com/signadot/fieldpath/cache"
	"github.com/signadot/fieldpath/debug"
)

type parserOpts struct {
	cacheSize int
}

type ParserOption func(*parserOpts)

// ParserCacheSize bounds the parser's memoization cache at n entries.
func ParserCacheSize(n int) ParserOption {
	return func(o *parserOpts) { o.cacheSize = n }
}

// Parser parses path expressions, memoizing successful parses in a
// bounded LRU cache. A Parser is safe for concurrent use; concurrent
// misses on the same expression may both parse, which is harmless since
// parsing is pure and results are value-equal.
type Parser struct {
	cache *cache.Cache[string, FieldPath]
}

func NewParser(opts ...ParserOption) *Parser {
	pOpts := &parserOpts{cacheSize: cache.DefaultCapacity}
	for _, f := range opts {
		f(pOpts)
	}
	return &Parser{
		cache: cache.New[string, FieldPath](pOpts.cacheSize),
	}
}

// Parse parses a path expression. The empty string is the valid spelling
// of Empty and bypasses the cache. Failed parses are never cached and
// propagate unmodified as *ParseError.
func (p *Parser) Parse(text string) (FieldPath, error) {
	if text == "" {
		return Empty, nil
	}
	if fp, ok := p.cache.Get(text); ok {
		return fp, nil
	}
	if debug.Cache() {
		debug.Logf("fieldpath: cache miss %q", text)
	}
	root, err := parsePath(text)
	if err != nil {
		return FieldPath{}, err
	}
	fp := FieldPath{root: root}
	p.cache.Set(text, fp)
	return fp, nil
}

// ParseOpt parses an optional path expression: a nil pointer yields
// ErrNilPath, which is distinct from the empty string.
func (p *Parser) ParseOpt(text *string) (FieldPath, error) {
	if text == nil {
		return FieldPath{}, ErrNilPath
	}
	return p.Parse(*text)
}

func (p *Parser) CacheStats() cache.Stats {
	return p.cache.Stats()
}

var defaultParser = NewParser()

// Parse parses a path expression with the package's shared parser.
func Parse(text string) (FieldPath, error) {
	return defaultParser.Parse(text)
}

// ParseOpt parses an optional path expression with the package's shared
// parser; nil yields ErrNilPath.
func ParseOpt(text *string) (FieldPath, error) {
	return defaultParser.ParseOpt(text)
}

// MustParse is Parse panicking on error, for fixed paths.
func MustParse(text string) FieldPath {
	fp, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("fieldpath: %v", err))
	}
	return fp
}
