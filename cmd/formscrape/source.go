package main

import (
	"io"
	"os"
	"strings"

	"github.com/fwojciec/formscrape"
)

// stdinSource is the source label recorded for markup read from stdin.
const stdinSource = "stdin"

// isURL reports whether source should be fetched rather than read from disk.
func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// readSource returns the markup named by source and the label to record
// for it: the URL, the file path, or "stdin" for "-".
func readSource(deps *Dependencies, source string) (string, string, error) {
	switch {
	case source == "-":
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), stdinSource, nil

	case isURL(source):
		if deps.Fetcher == nil {
			return "", "", formscrape.Errorf(formscrape.EINVALID, "fetching is not available for %s", source)
		}
		html, err := deps.Fetcher.Fetch(deps.Ctx, source)
		if err != nil {
			return "", "", err
		}
		return html, source, nil

	default:
		data, err := os.ReadFile(source)
		if os.IsNotExist(err) {
			return "", "", formscrape.Errorf(formscrape.ENOTFOUND, "file %q not found", source)
		} else if err != nil {
			return "", "", err
		}
		return string(data), source, nil
	}
}
