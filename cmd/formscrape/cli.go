package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/formscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Fetcher     formscrape.Fetcher
	Extractor   formscrape.ComponentExtractor
	Scanner     formscrape.PostbackScanner
	Snapshots   formscrape.SnapshotService
	RateLimiter formscrape.DomainLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug     bool          `help:"Log service calls to stderr"`
	DB        string        `name:"db" env:"FORMSCRAPE_DB" help:"Snapshot database path"`
	Timeout   time.Duration `short:"t" default:"10s" env:"FORMSCRAPE_TIMEOUT" help:"Fetch timeout per page"`
	UserAgent string        `name:"user-agent" default:"formscrape/1.0" env:"FORMSCRAPE_USER_AGENT" help:"User-Agent header for HTTP fetches"`
	RPS       float64       `name:"rps" default:"${rps}" help:"Requests per second per host"`

	Extract   ExtractCmd   `cmd:"" help:"Extract components of one kind from a page"`
	Postback  PostbackCmd  `cmd:"" help:"Print the postback parameters of a page"`
	Option    OptionCmd    `cmd:"" help:"Resolve a select option's value from its text"`
	Batch     BatchCmd     `cmd:"" help:"Extract components from many URLs concurrently"`
	Snapshots SnapshotsCmd `cmd:"" help:"List stored snapshots"`
	Show      ShowCmd      `cmd:"" help:"Show a stored snapshot"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored snapshot"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source       string `arg:"" help:"URL, file path, or - for stdin"`
	Kind         string `short:"k" required:"" help:"Component kind (input-text, input-checkbox, input-hidden, combo-box, data-grid, link-button, image)"`
	Render       bool   `short:"r" help:"Render the page in headless Chrome before extracting"`
	StripScripts bool   `name:"strip-scripts" help:"Remove scripts, stylesheets and event handlers before extracting"`
	Save         bool   `short:"s" help:"Store the result as a snapshot"`
}

// PostbackCmd is the "postback" subcommand.
type PostbackCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`
	Target string `short:"T" help:"Control that raised the event (__EVENTTARGET)"`
	JSON   bool   `name:"json" help:"Print JSON instead of a form-encoded body"`
}

// OptionCmd is the "option" subcommand.
type OptionCmd struct {
	Source string `arg:"" help:"File path or - for stdin"`
	ID     string `name:"id" required:"" help:"Select element id"`
	Text   string `name:"text" required:"" help:"Visible option text (case and accent insensitive)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs         []string `arg:"" name:"url" help:"Page URLs"`
	Kind         string   `short:"k" required:"" help:"Component kind"`
	Concurrency  int      `short:"c" default:"${concurrency}" help:"Concurrent fetch limit"`
	Render       bool     `short:"r" help:"Render pages in headless Chrome"`
	RecycleAfter int      `name:"recycle-after" default:"${recycle_after}" help:"Restart Chrome after this many rendered pages (0 never restarts)"`
	StripScripts bool     `name:"strip-scripts" help:"Remove scripts, stylesheets and event handlers before extracting"`
	Save         bool     `short:"s" help:"Store a snapshot per successful page"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct {
	URL    string `name:"url" help:"Only snapshots of this source URL"`
	Kind   string `short:"k" help:"Only snapshots of this component kind"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of snapshots"`
	Offset int    `help:"Number of snapshots to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}
