package guid

import "github.com/google/uuid"

// ToUUID converts g to a github.com/google/uuid UUID. The UUID holds the
// big-endian encoding, so both values print the same digits.
func (g GUID) ToUUID() uuid.UUID {
	return uuid.UUID(g.ToArray())
}

// FromUUID converts a github.com/google/uuid UUID to a GUID.
func FromUUID(u uuid.UUID) GUID {
	return FromArray(u)
}
