package formscrape

import (
	"context"
	"time"
)

// Snapshot is a stored extraction result for a single page.
type Snapshot struct {
	ID          string              `json:"id"`
	SourceURL   string              `json:"sourceUrl"`
	Kind        ComponentKind       `json:"kind"`
	ContentHash string              `json:"contentHash"`
	Response    *ComponentResponse  `json:"response"`
	Postback    *PostbackParameters `json:"postback,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	if _, err := ParseComponentKind(string(s.Kind)); err != nil {
		return err
	}
	if s.Response == nil {
		return Errorf(EINVALID, "snapshot response required")
	}
	return nil
}

// SnapshotService represents a service for managing snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot and assigns its ID and CreatedAt.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	SourceURL *string        `json:"sourceUrl"`
	Kind      *ComponentKind `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
