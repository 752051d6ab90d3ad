// Package common holds small helpers shared across the client layers.
package common

// WipeByteArray overwrites the slice contents with zeroes. Used to clear
// passwords from memory once they have been sent to the server.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
