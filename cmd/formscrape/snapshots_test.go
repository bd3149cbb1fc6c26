package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/formscrape"
	main "github.com/fwojciec/formscrape/cmd/formscrape"
	"github.com/fwojciec/formscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists snapshots with ID, kind, and URL", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter formscrape.SnapshotFilter) ([]*formscrape.Snapshot, error) {
				return []*formscrape.Snapshot{
					{
						ID:        "snap-123",
						SourceURL: "https://example.com/Search.aspx",
						Kind:      formscrape.KindComboBox,
						Response:  &formscrape.ComponentResponse{Kind: formscrape.KindComboBox, ComboBoxes: []formscrape.ComboBox{{}}},
						CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.SnapshotsCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "snap-123")
		assert.Contains(t, output, "combo-box")
		assert.Contains(t, output, "https://example.com/Search.aspx")
		assert.Contains(t, output, "2025-01-15 10:00:00")
	})

	t.Run("passes filter values", func(t *testing.T) {
		t.Parallel()

		var got formscrape.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter formscrape.SnapshotFilter) ([]*formscrape.Snapshot, error) {
				got = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.SnapshotsCmd{URL: "https://example.com", Kind: "image", Limit: 5, Offset: 10}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.SourceURL)
		assert.Equal(t, "https://example.com", *got.SourceURL)
		require.NotNil(t, got.Kind)
		assert.Equal(t, formscrape.KindImage, *got.Kind)
		assert.Equal(t, 5, got.Limit)
		assert.Equal(t, 10, got.Offset)
	})

	t.Run("shows helpful message when no snapshots exist", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ formscrape.SnapshotFilter) ([]*formscrape.Snapshot, error) {
				return []*formscrape.Snapshot{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		require.NoError(t, (&main.SnapshotsCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No snapshots found")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints snapshot as JSON", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*formscrape.Snapshot, error) {
				return &formscrape.Snapshot{
					ID:        id,
					SourceURL: "https://example.com",
					Kind:      formscrape.KindImage,
					Response:  &formscrape.ComponentResponse{Kind: formscrape.KindImage},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		require.NoError(t, (&main.ShowCmd{ID: "snap-1"}).Run(deps))
		assert.Contains(t, stdout.String(), `"id": "snap-1"`)
		assert.Contains(t, stdout.String(), `"sourceUrl": "https://example.com"`)
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*formscrape.Snapshot, error) {
				return nil, formscrape.Errorf(formscrape.ENOTFOUND, "snapshot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, formscrape.ENOTFOUND, formscrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "snapshot not found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		require.NoError(t, (&main.DeleteCmd{ID: "snap-123", Force: true}).Run(deps))
		assert.Equal(t, "snap-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: &mock.SnapshotService{},
		}

		err := (&main.DeleteCmd{ID: "snap-123"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("explains missing snapshot", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, id string) error {
				return formscrape.Errorf(formscrape.ENOTFOUND, "snapshot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "missing", Force: true}).Run(deps)

		assert.Equal(t, formscrape.ENOTFOUND, formscrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "formscrape snapshots")
	})
}
