package types

// Material names an entry of the density table.
type Material string

// String returns the string form of the material name.
func (m Material) String() string { return string(m) }

// SessionID identifies one interactive shell run in logs.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }
