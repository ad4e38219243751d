package llist

// BeginIter opens the list's single iteration scope at the head. Opening a
// second scope before EndIter panics.
func (l *List[T, K]) BeginIter() {
	if l.iterating {
		panic("llist: BeginIter while an iteration is in progress")
	}
	l.cur = l.head
	l.iterating = true
}

// NextIter returns the element under the cursor and advances it. Past the
// last element it returns the zero value of T, which cannot be told apart
// from a stored zero element: a loop that stops at the zero value ends early
// on such a list. To visit every element call NextIter exactly Len() times,
// or use Cursor.
func (l *List[T, K]) NextIter() (v T) {
	if !l.iterating {
		panic("llist: NextIter outside BeginIter/EndIter")
	}
	if l.cur == nil {
		return v
	}
	v = l.cur.value
	l.cur = l.cur.next
	return v
}

// EndIter closes the scope opened by BeginIter.
func (l *List[T, K]) EndIter() {
	if !l.iterating {
		panic("llist: EndIter without BeginIter")
	}
	l.cur = nil
	l.iterating = false
}

// Cursor is a read-only walk over a list, independent of the list's own
// BeginIter scope. Any number of cursors may be open at once. Linking or
// unlinking nodes while a cursor is in use invalidates it, and its next
// call to Next panics.
type Cursor[T, K any] struct {
	l           *List[T, K]
	next        *node[T]
	fingerprint uint64
}

func (l *List[T, K]) Cursor() *Cursor[T, K] {
	return &Cursor[T, K]{
		l:           l,
		next:        l.head,
		fingerprint: l.fingerprint(),
	}
}

// Next returns the next element. ok is false once the list is exhausted,
// and only then, so stored zero values are visited like any other.
func (c *Cursor[T, K]) Next() (v T, ok bool) {
	if c.l.fingerprint() != c.fingerprint {
		panic("llist: list modified during Cursor iteration")
	}
	if c.next == nil {
		return v, false
	}
	v = c.next.value
	c.next = c.next.next
	return v, true
}

// ForEach calls consumer with every index and element in order until
// consumer returns false.
func (l *List[T, K]) ForEach(consumer func(i int, v T) bool) {
	c := l.Cursor()
	for i := 0; ; i++ {
		v, ok := c.Next()
		if !ok || !consumer(i, v) {
			return
		}
	}
}
