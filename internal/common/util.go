// Package common provides small helpers shared by the gkeyring packages.
package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to drop secrets read from the terminal once they have been copied
// into a request.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
