package uuidx

import "github.com/google/uuid"

// New returns a time-ordered (version 7) UUID. It panics when the random
// source fails, which only happens on a broken system.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns New() in its canonical string form.
func NewString() string {
	return New().String()
}

// Prefixed returns a fresh version 7 UUID string prefixed with kind and a dash,
// e.g. "relay-01938f7c-...". An empty kind yields a bare UUID string.
func Prefixed(kind string) string {
	if kind == "" {
		return NewString()
	}
	return kind + "-" + NewString()
}
