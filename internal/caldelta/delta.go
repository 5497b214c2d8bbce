// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package caldelta

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the accepted layout for series start dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the layout written into `date` attributes.
	TimestampLayout = "2006-01-02 15:04:05"
)

// Delta is a relative calendar step. Any field may be zero or negative.
type Delta struct {
	Years  int
	Months int
	Days   int
	Hours  int
}

// IsZero reports whether applying d leaves a time unchanged.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// String renders the delta for log output.
func (d Delta) String() string {
	return fmt.Sprintf("%dy%dm%dd%dh", d.Years, d.Months, d.Days, d.Hours)
}

// Add returns t advanced by d.
func Add(t time.Time, d Delta) time.Time {
	year, month, day := t.Date()

	m := int(month) - 1 + d.Months
	year += d.Years + floorDiv(m, 12)
	m = m - floorDiv(m, 12)*12 + 1

	if last := DaysIn(year, time.Month(m)); day > last {
		day = last
	}

	shifted := time.Date(year, time.Month(m), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return shifted.Add(time.Duration(d.Days)*24*time.Hour + time.Duration(d.Hours)*time.Hour)
}

// Sequence returns n timestamps starting at start, each one step after the
// previous one.
func Sequence(start time.Time, step Delta, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, 0, n)
	cur := start
	for i := 0; i < n; i++ {
		out = append(out, cur)
		cur = Add(cur, step)
	}
	return out
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
