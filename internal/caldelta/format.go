// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package caldelta

import (
	"fmt"
	"time"
)

// ParseDate parses a `YYYY-MM-DD` string as midnight UTC. The returned error
// is the *time.ParseError from the time package, unmodified.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatTimestamp renders t in the record timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// NextDynamicOffset computes the offset text used for every dynamic record
// after the first one: the zero-padded month number of the date one month
// after now, rendered as "- MM months".
//
// The value depends only on now, never on the previous offset, so all
// records after the first carry the same text for a given clock reading.
// Downstream fixtures rely on this exact output.
func NextDynamicOffset(now time.Time) string {
	next := Add(now, Delta{Months: 1})
	return fmt.Sprintf("- %02d months", int(next.Month()))
}
