package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/formscrape"
	"github.com/fwojciec/formscrape/batch"
	"github.com/fwojciec/formscrape/goquery"
	"github.com/fwojciec/formscrape/htmlquery"
	fshttp "github.com/fwojciec/formscrape/http"
	"github.com/fwojciec/formscrape/postback"
	"github.com/fwojciec/formscrape/rod"
	fsslog "github.com/fwojciec/formscrape/slog"
	"github.com/fwojciec/formscrape/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// Stdin is read when a command's source is "-".
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService formscrape.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("formscrape"),
		kong.Description("Extract form elements and postback state from HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"rps":           strconv.FormatFloat(batch.DefaultRequestsPerSecond, 'g', -1, 64),
			"concurrency":   strconv.Itoa(batch.DefaultConcurrency),
			"recycle_after": strconv.Itoa(rod.DefaultRecycleAfter),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'formscrape --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open the database only for commands that read or write snapshots.
	if needsDB(cmd, cli) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FORMSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SnapshotService = sqlite.NewSnapshotService(m.DB)
		deps.Snapshots = m.SnapshotService
		if logger != nil {
			deps.Snapshots = fsslog.NewLoggingSnapshotService(deps.Snapshots, logger)
		}
	}

	// Wire command-specific dependencies based on command
	var render, stripScripts bool
	recycleAfter := rod.DefaultRecycleAfter
	switch cmd {
	case "extract":
		render, stripScripts = cli.Extract.Render, cli.Extract.StripScripts
	case "batch":
		render, stripScripts = cli.Batch.Render, cli.Batch.StripScripts
		recycleAfter = cli.Batch.RecycleAfter
	}

	if cmd == "extract" || cmd == "postback" || cmd == "batch" {
		var fetcher formscrape.Fetcher
		if render {
			f, err := rod.NewFetcher(
				rod.WithFetchTimeout(cli.Timeout),
				rod.WithRecycleAfter(recycleAfter),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = fshttp.NewFetcher(
				fshttp.WithTimeout(cli.Timeout),
				fshttp.WithUserAgent(cli.UserAgent),
			)
		}
		defer fetcher.Close()

		var opts []htmlquery.Option
		if stripScripts {
			opts = append(opts, htmlquery.WithSanitizer(goquery.NewSanitizer()))
		}

		deps.Fetcher = fetcher
		deps.Extractor = htmlquery.NewExtractor(opts...)
		deps.Scanner = postback.NewScanner()
		deps.RateLimiter = batch.NewDomainLimiter(cli.RPS)

		if logger != nil {
			deps.Fetcher = fsslog.NewLoggingFetcher(deps.Fetcher, logger)
			deps.Extractor = fsslog.NewLoggingExtractor(deps.Extractor, logger)
			deps.Scanner = fsslog.NewLoggingScanner(deps.Scanner, logger)
		}
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether cmd touches the snapshot store.
func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "snapshots", "show", "delete":
		return true
	case "extract":
		return cli.Extract.Save
	case "batch":
		return cli.Batch.Save
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "formscrape.db"
	}
	dir := filepath.Join(home, ".formscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "formscrape.db")
}
