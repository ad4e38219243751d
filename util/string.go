package util

import (
	"bytes"
	"math/rand"
)

// BytesCompare orders two byte keys, -1, 0 or 1.
func BytesCompare(key1, key2 []byte) int {
	return bytes.Compare(key1, key2)
}

// BytesCaseCompare is BytesCompare ignoring ASCII case.
func BytesCaseCompare(key1, key2 []byte) int {
	return bytes.Compare(bytes.ToLower(key1), bytes.ToLower(key2))
}

func GetRandomBytes(needLen int) []byte {
	ret := make([]byte, needLen)
	for i := 0; i < needLen; i++ {
		ret[i] = byte(rand.Intn(256))
	}
	return ret
}
