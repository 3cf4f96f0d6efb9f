// Package kv defines the client-local key/value storage boundary used
// to persist bookings between sessions.
package kv

// Store reads and writes raw values under string keys. Implementations
// are synchronous and local, best-effort durability is acceptable.
type Store interface {
	// Read returns the stored value and whether the key was present.
	Read(key string) ([]byte, bool, error)
	// Write replaces the value under key.
	Write(key string, value []byte) error
}
