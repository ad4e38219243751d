package llist

// AscInsert places v before the first element whose key is strictly greater
// than v's, so elements with equal keys keep their insertion order. It
// returns the index v landed at. The list must have KeyOf and Compare, and
// stays sorted only if every insertion goes through AscInsert.
func (l *List[T, K]) AscInsert(v T) int {
	if !l.keyed() {
		panic("llist: AscInsert on a list without KeyOf and Compare")
	}
	key := l.typ.KeyOf(v)

	var prev *node[T]
	idx := 0
	for n := l.head; n != nil; prev, n = n, n.next {
		if l.compare(l.typ.KeyOf(n.value), key) > 0 {
			break
		}
		idx++
	}

	nn := newNode(v)
	if prev == nil {
		nn.next = l.head
		l.head = nn
	} else {
		nn.next = prev.next
		prev.next = nn
	}
	l.len++
	l.mutated()
	return idx
}

// IndexInsert inserts v so that it ends up at index. Valid indexes are
// 0 through Len(); anything else leaves the list alone and returns false.
func (l *List[T, K]) IndexInsert(v T, index int) bool {
	if index < 0 || index > l.len {
		return false
	}
	switch index {
	case 0:
		l.InsertFront(v)
	case l.len:
		l.InsertBack(v)
	default:
		prev := l.nodeAt(index - 1)
		nn := newNode(v)
		nn.next = prev.next
		prev.next = nn
		l.len++
		l.mutated()
	}
	return true
}

// IndexRemove detaches the element at index and returns it. An interior
// element is also passed to Free, if the list has one, before it is
// returned; the first and last elements are not.
func (l *List[T, K]) IndexRemove(index int) (v T, ok bool) {
	if index < 0 || index >= l.len {
		return v, false
	}
	switch index {
	case 0:
		return l.RemoveFirst()
	case l.len - 1:
		return l.RemoveLast()
	}
	prev := l.nodeAt(index - 1)
	n := prev.next
	prev.next = n.next
	n.next = nil
	l.len--
	l.mutated()
	l.free(n.value)
	return n.value, true
}

// RefIndexData returns the element at index without changing the list.
// Unlike NextIter it reports stored zero values with ok set.
func (l *List[T, K]) RefIndexData(index int) (v T, ok bool) {
	if index < 0 || index >= l.len {
		return v, false
	}
	return l.nodeAt(index).value, true
}
