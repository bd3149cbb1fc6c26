package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/formscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ formscrape.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements formscrape.SnapshotService using SQLite.
// Responses and postback parameters are stored as JSON documents.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a new snapshot and assigns its ID and CreatedAt.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *formscrape.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	response, err := json.Marshal(snapshot.Response)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	var postback sql.NullString
	if snapshot.Postback != nil {
		b, err := json.Marshal(snapshot.Postback)
		if err != nil {
			return fmt.Errorf("failed to encode postback: %w", err)
		}
		postback = sql.NullString{String: string(b), Valid: true}
	}

	snapshot.ID = uuid.New().String()
	snapshot.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, kind, content_hash, response, postback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.SourceURL, string(snapshot.Kind), snapshot.ContentHash,
		string(response), postback, formatTime(snapshot.CreatedAt))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*formscrape.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, kind, content_hash, response, postback, created_at
		FROM snapshots
		WHERE id = ?
	`, id)

	snapshot, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, formscrape.Errorf(formscrape.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter formscrape.SnapshotFilter) ([]*formscrape.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, kind, content_hash, response, postback, created_at FROM snapshots WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*formscrape.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return formscrape.Errorf(formscrape.ENOTFOUND, "snapshot not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanSnapshot reads one snapshot row and decodes its JSON columns.
func scanSnapshot(sc scanner) (*formscrape.Snapshot, error) {
	var snapshot formscrape.Snapshot
	var kind, response, createdAt string
	var postback sql.NullString

	if err := sc.Scan(&snapshot.ID, &snapshot.SourceURL, &kind, &snapshot.ContentHash,
		&response, &postback, &createdAt); err != nil {
		return nil, err
	}
	snapshot.Kind = formscrape.ComponentKind(kind)

	snapshot.Response = &formscrape.ComponentResponse{}
	if err := json.Unmarshal([]byte(response), snapshot.Response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if postback.Valid {
		snapshot.Postback = &formscrape.PostbackParameters{}
		if err := json.Unmarshal([]byte(postback.String), snapshot.Postback); err != nil {
			return nil, fmt.Errorf("failed to decode postback: %w", err)
		}
	}

	var err error
	snapshot.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
