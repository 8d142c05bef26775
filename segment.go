package fieldpath

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/signadot/fieldpath/token"
)

// Segment is one step of a parsed field path: either a name (object field
// access) or a non-negative index (array element access), discriminated by
// which of Name and Index is non-nil. Child links to the next step; a nil
// Child marks the leaf.
//
// Segments form exclusively-owned chains: once a chain is handed out in a
// FieldPath it is immutable and must not be modified. Quoted records
// whether a name was written in quoted form in the source text; it affects
// rendering only, never equality or ordering.
type Segment struct {
	Name   *string
	Quoted bool
	Index  *int
	Child  *Segment
}

func newNameSegment(name string, quoted bool) *Segment {
	return &Segment{Name: &name, Quoted: quoted}
}

func newIndexSegment(index int) *Segment {
	return &Segment{Index: &index}
}

func (s *Segment) Named() bool {
	return s != nil && s.Name != nil
}

func (s *Segment) Indexed() bool {
	return s != nil && s.Index != nil
}

// Equal reports whether the chains rooted at s and o are segment-wise
// equal. Quoted does not participate.
func (s *Segment) Equal(o *Segment) bool {
	for s != nil && o != nil {
		if !s.segmentEqual(o) {
			return false
		}
		s, o = s.Child, o.Child
	}
	return s == nil && o == nil
}

// segmentEqual compares a single position, ignoring children.
func (s *Segment) segmentEqual(o *Segment) bool {
	if s == nil || o == nil {
		return s == o
	}
	if (s.Name == nil) != (o.Name == nil) {
		return false
	}
	if s.Name != nil {
		return *s.Name == *o.Name
	}
	if (s.Index == nil) != (o.Index == nil) {
		return false
	}
	if s.Index != nil {
		return *s.Index == *o.Index
	}
	return true
}

// Compare orders chains position by position: names lexicographically,
// indexes numerically, and at a position holding different variants the
// name sorts after the index. A chain that ends first sorts first.
func (s *Segment) Compare(o *Segment) int {
	for {
		if s == nil && o == nil {
			return 0
		}
		if s == nil {
			return -1
		}
		if o == nil {
			return 1
		}
		if c := s.compareSegment(o); c != 0 {
			return c
		}
		s, o = s.Child, o.Child
	}
}

func (s *Segment) compareSegment(o *Segment) int {
	switch {
	case s.Name != nil && o.Name != nil:
		return strings.Compare(*s.Name, *o.Name)
	case s.Index != nil && o.Index != nil:
		return cmp.Compare(*s.Index, *o.Index)
	case s.Name != nil:
		return 1
	default:
		return -1
	}
}

// clone deep-copies the chain rooted at s. No node is shared with s.
func (s *Segment) clone() *Segment {
	if s == nil {
		return nil
	}
	res := &Segment{Quoted: s.Quoted}
	if s.Name != nil {
		tmp := *s.Name
		res.Name = &tmp
	}
	if s.Index != nil {
		tmp := *s.Index
		res.Index = &tmp
	}
	res.Child = s.Child.clone()
	return res
}

// cloneWithChild deep-copies the chain and attaches leaf under the copy's
// last segment, leaving s untouched.
func (s *Segment) cloneWithChild(leaf *Segment) *Segment {
	res := s.clone()
	last := res
	for last.Child != nil {
		last = last.Child
	}
	last.Child = leaf
	return res
}

// writePath renders the chain. A '.' precedes every named segment except
// the root position; index segments render as "[n]" with no separator.
// With escape, names needing quoting are quoted even if they were not
// quoted in the source.
func (s *Segment) writePath(b *strings.Builder, escape bool) {
	for x := s; x != nil; x = x.Child {
		switch {
		case x.Index != nil:
			fmt.Fprintf(b, "[%d]", *x.Index)
		case x.Name != nil:
			if x != s {
				b.WriteByte('.')
			}
			name := *x.Name
			if x.Quoted || (escape && token.NeedsQuote(name)) {
				b.WriteString(token.Quote(name))
			} else {
				b.WriteString(name)
			}
		}
	}
}

// SegmentString returns the canonical text of this single segment,
// quoting names which require it.
func (s *Segment) SegmentString() string {
	if s == nil {
		return ""
	}
	if s.Index != nil {
		return fmt.Sprintf("[%d]", *s.Index)
	}
	name := *s.Name
	if s.Quoted || token.NeedsQuote(name) {
		return token.Quote(name)
	}
	return name
}

func (s *Segment) hash() uint64 {
	h := fnv.New64a()
	var buf [5]byte
	for x := s; x != nil; x = x.Child {
		if x.Index != nil {
			buf[0] = 'i'
			binary.BigEndian.PutUint32(buf[1:], uint32(*x.Index))
			h.Write(buf[:])
			continue
		}
		// length-framed so name bytes cannot alias segment boundaries
		buf[0] = 'n'
		binary.BigEndian.PutUint32(buf[1:], uint32(len(*x.Name)))
		h.Write(buf[:])
		io.WriteString(h, *x.Name)
	}
	return h.Sum64()
}
