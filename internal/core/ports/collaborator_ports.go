package ports

// Clock returns a nanosecond timestamp that never decreases within a process.
type Clock interface {
	Now() (uint64, error)
}

// IDGenerator returns identifiers that are never repeated.
type IDGenerator interface {
	NewID() (string, error)
}
