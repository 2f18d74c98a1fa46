package model

import (
	"strings"
	"time"
)

const timestampSecondLayout = "2006-01-02T15:04:05"

// FormatTimestamp writes an ISO-8601 local date-time. Seconds are omitted when zero.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(TimestampPrefixLayout)
	}
	if t.Nanosecond() == 0 {
		return t.Format(timestampSecondLayout)
	}
	return t.Format("2006-01-02T15:04:05.999999999")
}

// ParseTimestamp reads an ISO-8601 local date-time; an empty value is an absent timestamp.
// The result carries no zone and is stored as UTC.
func ParseTimestamp(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	layout := TimestampPrefixLayout
	if len(value) > len(TimestampPrefixLayout) {
		layout = "2006-01-02T15:04:05.999999999"
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
