package llist

import (
	"encoding/binary"
	"unsafe"

	"github.com/dchest/siphash"
	"github.com/pengdafu/llist-golang/util"
)

// SipHash key halves, see SetFingerprintSeed.
var fingerprintK0, fingerprintK1 uint64

func init() {
	SetFingerprintSeed(util.GetRandomBytes(16))
}

// SetFingerprintSeed sets the 16 byte SipHash key used for list
// fingerprints. Shorter seeds are zero padded.
//
// The key is shared by every list in the process and is not guarded: call
// this before any goroutine starts iterating lists, never concurrently with
// Cursor, HasKey, ForEach, Values, String or Dump. Reseeding invalidates
// every open Cursor.
func SetFingerprintSeed(seed []byte) {
	var key [16]byte
	copy(key[:], seed)
	fingerprintK0 = binary.LittleEndian.Uint64(key[0:])
	fingerprintK1 = binary.LittleEndian.Uint64(key[8:])
}

// fingerprint hashes the structural state of the list. Two calls return the
// same value only if no node was linked or unlinked in between, so a Cursor
// can tell its list changed under it.
func (l *List[T, K]) fingerprint() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(uintptr(unsafe.Pointer(l.head))))
	binary.LittleEndian.PutUint64(buf[8:], uint64(l.len))
	binary.LittleEndian.PutUint64(buf[16:], l.mods)

	return siphash.Hash(fingerprintK0, fingerprintK1, buf[:])
}
