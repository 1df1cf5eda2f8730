package models

import (
	"strings"
	"time"
)

// Upstream boards disagree on date formats: ISO timestamps (Greenhouse,
// SmartRecruiters), RFC1123 pub dates (RSS), plain dates (Workday postedOn
// sometimes), or junk. Try them in order and fall back to zero time.
var publishedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePublishedAt parses a posting timestamp leniently. A zero time means
// "unparseable" and sorts oldest; callers only use this for tie-breaking.
func ParsePublishedAt(dateStr string) time.Time {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	// ISO datetime with an unusual suffix: salvage the date part
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t
		}
	}

	return time.Time{}
}
