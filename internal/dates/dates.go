// Package dates parses operation timestamps coming from external history
// files. Sources disagree on separators and field order, so parsing tries a
// fixed list of layouts and reports no-match instead of failing.
package dates

import (
	"strings"
	"time"
)

// layouts are tried in order; first match wins.
var layouts = []string{
	"2006-01-02 15:04:05", // 2025-09-27 22:17:26
	"02/01/2006 15:04",    // 28/09/2025 22:17
	"2006-01-02 15:04",    // 2025-09-27 22:17
	"02.01.2006 15:04:05", // 28.09.2025 22:17:26
	"02-01-2006 15:04:05", // 28-09-2025 22:17:26
}

// Parse attempts to parse text against each known layout.
// The second return value is false when no layout matches.
func Parse(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
