// Package uuid generates time-ordered identifiers for primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Version 7 encodes the creation time in the
// high bits, so identifiers generated later sort later and b-tree inserts
// stay append-mostly. Creation order is also recoverable from the id alone.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// NewV7 fails only if the random source does; v4 keeps the key unique.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
