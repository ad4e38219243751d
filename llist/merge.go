package llist

import (
	"fmt"
	"reflect"
)

// Split moves the first n elements, in order, into a new list with the same
// Type and privData and returns it; l keeps the rest. If n <= 0 or l holds
// fewer than n elements nothing moves and l itself is returned, so callers
// detect a split by comparing the result with l.
func (l *List[T, K]) Split(n int) *List[T, K] {
	if n <= 0 || l.len < n {
		return l
	}
	front := Create(l.typ, l.privData)
	cut := l.nodeAt(n - 1)
	front.head, front.len = l.head, n
	l.head = cut.next
	cut.next = nil
	l.len -= n
	l.mutated()
	front.mutated()
	return front
}

// Merge drains two ascending lists into a new ascending list. On equal keys
// the element from l1 goes first. Both inputs are left empty but usable.
// l1 and l2 must share KeyOf, Compare and Free; the result uses l1's Type and
// privData.
func Merge[T, K any](l1, l2 *List[T, K]) *List[T, K] {
	if l1 == nil || l2 == nil {
		panic("llist: Merge with a nil list")
	}
	if !sameType(l1.typ, l2.typ) {
		panic("llist: Merge of lists with different KeyOf, Compare or Free")
	}
	if !l1.keyed() {
		panic("llist: Merge on lists without KeyOf and Compare")
	}

	merged := Create(l1.typ, l1.privData)
	keyOf := l1.typ.KeyOf
	var tail *node[T]
	for l1.head != nil || l2.head != nil {
		var src *List[T, K]
		switch {
		case l2.head == nil:
			src = l1
		case l1.head == nil:
			src = l2
		case merged.compare(keyOf(l1.head.value), keyOf(l2.head.value)) <= 0:
			src = l1
		default:
			src = l2
		}

		n := src.head
		src.head = n.next
		src.len--
		n.next = nil
		if tail == nil {
			merged.head = n
		} else {
			tail.next = n
		}
		tail = n
		merged.len++
	}
	l1.mutated()
	l2.mutated()
	merged.mutated()
	return merged
}

func sameType[T, K any](a, b *Type[T, K]) bool {
	if a == b {
		return true
	}
	return funcID(a.KeyOf) == funcID(b.KeyOf) &&
		funcID(a.Compare) == funcID(b.Compare) &&
		funcID(a.Free) == funcID(b.Free)
}

// funcID identifies a func by its code pointer; nil funcs map to 0.
func funcID(fn interface{}) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("llist: funcID of %T", fn))
	}
	return v.Pointer()
}
