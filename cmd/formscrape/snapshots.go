package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/formscrape"
)

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
	filter := formscrape.SnapshotFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	if c.Kind != "" {
		kind, err := formscrape.ParseComponentKind(c.Kind)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'formscrape extract --save' to create one.")
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-14s  %3d  %s\n",
			s.ID, s.CreatedAt.Format(time.DateTime), s.Kind, s.Response.Len(), s.SourceURL)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, snapshot)
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return formscrape.Errorf(formscrape.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.ID); err != nil {
		if formscrape.ErrorCode(err) == formscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'formscrape snapshots' to see stored snapshots.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.ID)
	return nil
}
