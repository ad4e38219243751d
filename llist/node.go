package llist

type node[T any] struct {
	value T
	next  *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// nodeAt returns the node at index, which must be in [0, len).
func (l *List[T, K]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// last returns the tail node, or nil if the list is empty.
func (l *List[T, K]) last() *node[T] {
	n := l.head
	if n == nil {
		return nil
	}
	for n.next != nil {
		n = n.next
	}
	return n
}
