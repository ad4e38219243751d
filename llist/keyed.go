package llist

// find returns the first node whose key equals key along with its
// predecessor, which is nil when the match is the head. A nil list finds
// nothing.
func (l *List[T, K]) find(key K) (prev, n *node[T]) {
	if l == nil || !l.keyed() {
		return nil, nil
	}
	for n = l.head; n != nil; prev, n = n, n.next {
		if l.compare(l.typ.KeyOf(n.value), key) == 0 {
			return prev, n
		}
	}
	return nil, nil
}

// SearchByKey returns the first element whose key equals key.
func (l *List[T, K]) SearchByKey(key K) (v T, ok bool) {
	_, n := l.find(key)
	if n == nil {
		return v, false
	}
	return n.value, true
}

// RemoveByKey detaches the first element whose key equals key and returns it.
func (l *List[T, K]) RemoveByKey(key K) (v T, ok bool) {
	prev, n := l.find(key)
	if n == nil {
		return v, false
	}
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	n.next = nil
	l.len--
	l.mutated()
	return n.value, true
}

// ReplaceByKey stores v in place of the first element whose key equals
// oldKey and returns the element it replaced. The node keeps its position.
func (l *List[T, K]) ReplaceByKey(oldKey K, v T) (old T, ok bool) {
	_, n := l.find(oldKey)
	if n == nil {
		return old, false
	}
	old, n.value = n.value, v
	return old, true
}

func (l *List[T, K]) HasKey(key K) bool {
	if l == nil || !l.keyed() {
		return false
	}
	c := l.Cursor()
	for {
		v, ok := c.Next()
		if !ok {
			return false
		}
		if l.compare(l.typ.KeyOf(v), key) == 0 {
			return true
		}
	}
}
