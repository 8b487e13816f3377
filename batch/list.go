// Package batch reads lists of case-page locations and de-duplicates them
// for sequential processing by the batch command.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// ReadList parses one location per line into a Queue. Blank lines and lines
// starting with "#" are ignored. It also returns how many lines were
// dropped as duplicates.
func ReadList(r io.Reader) (*Queue, int, error) {
	q := NewQueue()
	dups := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !q.Add(line) {
			dups++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading list: %w", err)
	}
	return q, dups, nil
}

// NormalizeLocation returns the de-duplication key of a location: URLs lose
// their fragment and trailing slash, file paths are cleaned.
func NormalizeLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}
	parsed, err := url.Parse(location)
	if err != nil || parsed.Host == "" {
		return filepath.Clean(location)
	}

	parsed.Fragment = ""
	parsed.Host = strings.ToLower(parsed.Host)
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
