package drip

import "github.com/google/uuid"

// ID is the opaque identity of an entity. It is assigned at creation and never reused.
type ID = uuid.UUID

// NewID returns a fresh random identity.
func NewID() ID { return uuid.New() }

// ParseID parses the textual form of an ID.
func ParseID(s string) (ID, error) { return uuid.Parse(s) }
