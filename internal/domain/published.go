package domain

import (
	"strings"
	"time"
)

// publishedLayouts are the source formats we know how to order chronologically.
var publishedLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04",
	time.RFC3339,
}

// ParsePublished tries the known layouts against a free-form published string.
func ParsePublished(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PublishedAfter reports whether a sorts before b in newest-first order.
// Parseable values are compared as instants and come before unparseable ones;
// otherwise the raw strings are compared lexicographically.
func PublishedAfter(a, b string) bool {
	ta, okA := ParsePublished(a)
	tb, okB := ParsePublished(b)

	switch {
	case okA && okB:
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
	case okA != okB:
		return okA
	}
	return a > b
}
