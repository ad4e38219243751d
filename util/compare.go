package util

import "github.com/emirpasic/gods/utils"

// Comparator adapts a gods comparator (utils.IntComparator,
// utils.StringComparator, ...) to the compare func of a llist.Type. The
// privData argument is ignored.
func Comparator[K any](c utils.Comparator) func(privData interface{}, k1, k2 K) int {
	return func(_ interface{}, k1, k2 K) int {
		return c(k1, k2)
	}
}

// Bytes is the llist.Type compare func for []byte keys.
func Bytes(_ interface{}, k1, k2 []byte) int {
	return BytesCompare(k1, k2)
}

// BytesCase is Bytes ignoring ASCII case.
func BytesCase(_ interface{}, k1, k2 []byte) int {
	return BytesCaseCompare(k1, k2)
}
