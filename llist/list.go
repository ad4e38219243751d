// Package llist implements a singly linked list whose key access, key
// ordering and element cleanup are supplied by the caller through a Type.
//
// A List is meant for a single owner. It holds no locks; callers that share
// one between goroutines must synchronize access themselves.
package llist

import "fmt"

// Type carries the caller supplied behavior of a list. Every field is
// optional: a list created without KeyOf and Compare supports positional
// operations only, and a list without Free never touches its elements on
// cleanup.
type Type[T, K any] struct {
	// KeyOf extracts the key of an element.
	KeyOf func(v T) K
	// Compare returns a negative number when k1 < k2, zero when they are
	// equal and a positive number when k1 > k2. privData is the value given
	// to Create.
	Compare func(privData interface{}, k1, k2 K) int
	// Free releases an element left in the list at RemoveAll/Destroy time.
	Free func(v T)
}

type List[T, K any] struct {
	head     *node[T]
	len      int
	typ      *Type[T, K]
	privData interface{}

	// embedded cursor, valid between BeginIter and EndIter
	cur       *node[T]
	iterating bool

	// bumped on every structural change, see fingerprint
	mods uint64
}

// verifyLen makes every mutation walk the chain and check it against len.
var verifyLen = false

// Create returns an empty list. typ may be nil for a purely positional list.
func Create[T, K any](typ *Type[T, K], privData interface{}) *List[T, K] {
	if typ == nil {
		typ = &Type[T, K]{}
	}
	return &List[T, K]{typ: typ, privData: privData}
}

func (l *List[T, K]) Len() int {
	return l.len
}

func (l *List[T, K]) IsEmpty() bool {
	return l.len == 0
}

func (l *List[T, K]) keyed() bool {
	return l.typ.KeyOf != nil && l.typ.Compare != nil
}

func (l *List[T, K]) compare(k1, k2 K) int {
	return l.typ.Compare(l.privData, k1, k2)
}

func (l *List[T, K]) free(v T) {
	if l.typ.Free != nil {
		l.typ.Free(v)
	}
}

// mutated must follow every structural change.
func (l *List[T, K]) mutated() {
	l.mods++
	if !verifyLen {
		return
	}
	n := 0
	for x := l.head; x != nil; x = x.next {
		n++
	}
	if n != l.len {
		panic(fmt.Sprintf("llist: length %d does not match %d reachable nodes", l.len, n))
	}
}

// InsertFront links v before the current head.
func (l *List[T, K]) InsertFront(v T) {
	n := newNode(v)
	n.next = l.head
	l.head = n
	l.len++
	l.mutated()
}

// InsertBack appends v. The list keeps no tail reference, so this walks the
// whole chain.
func (l *List[T, K]) InsertBack(v T) {
	tail := l.last()
	if tail == nil {
		l.InsertFront(v)
		return
	}
	tail.next = newNode(v)
	l.len++
	l.mutated()
}

// RemoveFirst detaches the head element. ok is false if the list is empty.
func (l *List[T, K]) RemoveFirst() (v T, ok bool) {
	n := l.head
	if n == nil {
		return v, false
	}
	l.head = n.next
	n.next = nil
	l.len--
	l.mutated()
	return n.value, true
}

// RemoveLast detaches the tail element. ok is false if the list is empty.
func (l *List[T, K]) RemoveLast() (v T, ok bool) {
	if l.len <= 1 {
		return l.RemoveFirst()
	}
	prev := l.nodeAt(l.len - 2)
	n := prev.next
	prev.next = nil
	l.len--
	l.mutated()
	return n.value, true
}

// RemoveAll drains the list, handing each element to Free if the list has
// one. The list stays usable; an open BeginIter scope stays open and its
// cursor is at the end.
func (l *List[T, K]) RemoveAll() {
	for l.head != nil {
		v, _ := l.RemoveFirst()
		l.free(v)
	}
	l.cur = nil
}

// Destroy drains the list like RemoveAll and drops any iteration state.
// It is a no-op on a nil list.
func (l *List[T, K]) Destroy() {
	if l == nil {
		return
	}
	l.RemoveAll()
	l.cur = nil
	l.iterating = false
}
