package rawio

// Strlen returns the number of bytes in b before the first zero byte. When b
// holds no zero byte the scan stops at the end of the slice and len(b) is
// returned.
func Strlen(b []byte) int {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}

	return n
}
