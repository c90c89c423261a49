package storage

import "encoding/json"

// Remote collection names. Each one has its own change feed.
const (
	CollectionMovies = "movies"
	CollectionAwards = "awards"
)

type ChangeType string

const (
	ChildAdded   ChangeType = "child-added"
	ChildChanged ChangeType = "child-changed"
	ChildRemoved ChangeType = "child-removed"
	// ChildMoved is never produced for these collections. Consumers treat
	// it as an anomaly, not a failure.
	ChildMoved ChangeType = "child-moved"
)

// ChangeEvent describes a single mutation of a remote collection entry.
// Payload carries the full entity for added/changed events and is empty
// for removed events.
type ChangeEvent struct {
	Type       ChangeType      `json:"type"`
	Collection string          `json:"collection"`
	Key        string          `json:"key"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}
