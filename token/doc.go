// Package token provides tokenization support for field path expressions.
//
// [Tokenize] turns the bytes of a path expression such as
//
//	a.b[3]."odd name"
//
// into a sequence of typed tokens with positions. Quoting support for
// rendering paths back to text lives here as well ([Quote], [Unquote],
// [NeedsQuote]).
package token
