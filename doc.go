// Package fieldpath provides an immutable representation of dotted and
// indexed field-addressing expressions such as
//
//	a.b[3].c
//	"odd name".x
//
// used to reference nested locations inside semi-structured documents.
//
// [Parse] turns an expression into a [FieldPath], memoizing successful
// parses in a bounded LRU cache; construct a [Parser] for an isolated
// cache. FieldPath values support rendering ([FieldPath.PathString]),
// structural equality and a total order, iteration over segments, and
// the ancestor/descendant algorithms [FieldPath.CloneAfterAncestor],
// [FieldPath.AtOrBelow] and [FieldPath.AtOrAbove]. Paths are extended
// without mutation via [FieldPath.CloneWithName] and
// [FieldPath.CloneWithIndex].
//
// The package stores no document values: a FieldPath is an opaque,
// ordered key which document models consume.
package fieldpath
