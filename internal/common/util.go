package common

// WipeByteArray zeroes a sensitive buffer (passwords) once it is no longer
// needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
