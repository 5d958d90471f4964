package boundedstr

// wipe overwrites every byte of b with zero.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Wipe zeroes the active buffer and empties the value. It is the explicit
// destruction step for secret material; the value no longer satisfies its
// kind's invariants afterwards (unless Min is zero) and must not be used
// again. Wipe works for every kind, whether or not SecureErase is set.
func (s *Str) Wipe() {
	wipe(s.buf)
	s.n = 0
}
