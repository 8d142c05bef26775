package fieldpath

import (
	"strings"
)

// FieldPath is an immutable parsed field path wrapping the root of a
// segment chain. FieldPath values are cheap to copy and safe to share
// across goroutines; all operations leave the receiver untouched.
//
// The zero FieldPath is the "no path" value returned alongside false or
// an error; valid paths always have a present root.
type FieldPath struct {
	root *Segment
}

// Empty is the shared empty path: a single unquoted root name "" with no
// child. Parse("") returns it.
var Empty = FieldPath{root: newNameSegment("", false)}

// Root returns the root segment of the chain. Callers must not modify
// the returned chain.
func (p FieldPath) Root() *Segment {
	return p.root
}

func (p FieldPath) String() string {
	return p.PathString(false)
}

// PathString renders the path. Without escape, only names parsed from
// quoted form are re-quoted; with escape, any name requiring quoting is
// quoted, making the result re-parseable for every constructible path.
func (p FieldPath) PathString(escape bool) string {
	if p.root == nil {
		return ""
	}
	b := &strings.Builder{}
	p.root.writePath(b, escape)
	return b.String()
}

// Equal reports structural equality of the two chains.
func (p FieldPath) Equal(o FieldPath) bool {
	return p.root.Equal(o.root)
}

// Compare orders two paths segment by segment from the root; see
// Segment.Compare for the ordering rules. The result is -1, 0 or 1.
func (p FieldPath) Compare(o FieldPath) int {
	return p.root.Compare(o.root)
}

// Hash returns a structural hash consistent with Equal.
func (p FieldPath) Hash() uint64 {
	return p.root.hash()
}

// Depth returns the number of segments in the chain.
func (p FieldPath) Depth() int {
	n := 0
	for s := p.root; s != nil; s = s.Child {
		n++
	}
	return n
}

// Segments returns a function usable with for-range to iterate the chain
// from root to leaf. Each returned function starts fresh at the root.
func (p FieldPath) Segments() func(func(*Segment) bool) {
	return func(yield func(*Segment) bool) {
		for s := p.root; s != nil; s = s.Child {
			if !yield(s) {
				return
			}
		}
	}
}

// CloneWithName returns a new path with a name segment appended under
// this path's leaf. The receiver's chain is deep-copied, never shared.
func (p FieldPath) CloneWithName(name string) FieldPath {
	return FieldPath{root: p.orEmpty().cloneWithChild(newNameSegment(name, false))}
}

// CloneWithIndex returns a new path with an index segment appended under
// this path's leaf.
func (p FieldPath) CloneWithIndex(index int) FieldPath {
	return FieldPath{root: p.orEmpty().cloneWithChild(newIndexSegment(index))}
}

func (p FieldPath) orEmpty() *Segment {
	if p.root == nil {
		return Empty.root
	}
	return p.root
}

// CloneAfterAncestor returns the sub-path of p starting after ancestor.
// For p = "a.b.c.d" and ancestor = "a.b" the result is "c.d". If the two
// paths are equal the result is Empty. The second result is false when
// ancestor is not an ancestor of p, when ancestor is in fact a progeny
// of p, or when the sub-path would begin with an index segment (a
// sub-path must start from a named field). A false result is an ordinary
// outcome, not an error.
func (p FieldPath) CloneAfterAncestor(ancestor FieldPath) (FieldPath, bool) {
	if p.root == ancestor.root {
		return Empty, true
	}
	c1, c2 := p.root, ancestor.root
	for c1 != nil && c2 != nil {
		if !c1.segmentEqual(c2) {
			return FieldPath{}, false
		}
		c1, c2 = c1.Child, c2.Child
	}
	if c1 == nil && c2 == nil {
		// ancestor same as p
		return Empty, true
	}
	if c1 == nil || c1.Indexed() {
		// ancestor is a progeny, or the sub-path starts at an index
		return FieldPath{}, false
	}
	return FieldPath{root: c1.clone()}, true
}

// AtOrBelow reports whether other is this path or one of its progeny.
func (p FieldPath) AtOrBelow(other FieldPath) bool {
	return isPrefix(p.root, other.root)
}

// AtOrAbove reports whether other is this path or one of its ancestors.
func (p FieldPath) AtOrAbove(other FieldPath) bool {
	return isPrefix(other.root, p.root)
}

// isPrefix reports whether the chain pre is a segment-wise prefix of the
// chain full, including the equal case.
func isPrefix(pre, full *Segment) bool {
	for pre != nil {
		if !pre.segmentEqual(full) {
			return false
		}
		pre, full = pre.Child, full.Child
	}
	return true
}
