package llist

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List[int, int])(nil)

// Empty reports whether the list has no elements.
func (l *List[T, K]) Empty() bool {
	return l.IsEmpty()
}

// Size returns the number of elements.
func (l *List[T, K]) Size() int {
	return l.Len()
}

// Clear is RemoveAll.
func (l *List[T, K]) Clear() {
	l.RemoveAll()
}

// Values returns every element in list order, stored zero values included.
func (l *List[T, K]) Values() []interface{} {
	values := make([]interface{}, 0, l.len)
	l.ForEach(func(_ int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

func (l *List[T, K]) String() string {
	str := "LinkedList\n"
	values := make([]string, 0, l.len)
	l.ForEach(func(_ int, v T) bool {
		values = append(values, fmt.Sprintf("%v", v))
		return true
	})
	str += strings.Join(values, ", ")
	return str
}

// Dump writes one "index: element" line per element to w.
func (l *List[T, K]) Dump(w io.Writer) (err error) {
	l.ForEach(func(i int, v T) bool {
		_, err = fmt.Fprintf(w, "%d: %v\n", i, v)
		return err == nil
	})
	return err
}
