package types

import (
	"time"

	"github.com/google/uuid"
)

// SegmentID represents a UUIDv7 segment identifier.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering ensures sequential IDs cluster in
// B-tree indexes.
type SegmentID string

// VersionID represents a UUIDv7 segment-version identifier.
type VersionID string

// NewSegmentID generates a UUIDv7 segment identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewSegmentID() SegmentID {
	return SegmentID(uuid.Must(uuid.NewV7()).String())
}

// NewVersionID generates a UUIDv7 segment-version identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewVersionID() VersionID {
	return VersionID(uuid.Must(uuid.NewV7()).String())
}

// ParseSegmentID validates and converts a string to SegmentID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseSegmentID(s string) (SegmentID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", err
	}
	return SegmentID(s), nil
}

// VersionIDTime extracts the timestamp embedded in a UUIDv7 version ID.
// Enables time-ordered history display without a database lookup.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func VersionIDTime(id VersionID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
