package llist

func init() {
	verifyLen = true
}

func (l *List[T, K]) Mods() uint64 {
	return l.mods
}

func (l *List[T, K]) Fingerprint() uint64 {
	return l.fingerprint()
}
