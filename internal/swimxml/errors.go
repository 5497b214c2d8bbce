// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"errors"
	"fmt"
)

// ErrEmptySelection is returned when a series needs a value but its candidate
// list is empty.
var ErrEmptySelection = errors.New("cannot choose from an empty value list")

// DateParseError reports a malformed absolute-mode start date. Err is the
// underlying *time.ParseError.
type DateParseError struct {
	Value string
	Err   error
}

// Error implements the error interface for DateParseError.
func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid from_date %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DateParseError) Unwrap() error {
	return e.Err
}
