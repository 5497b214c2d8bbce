// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Series, the description of one synthesized operations
// data time series.
//
// A series runs in exactly one of two modes. In absolute mode every record is
// stamped with a full timestamp, starting at FromDate and advancing by Step
// between records. In dynamic mode every record is stamped with a relative
// offset string instead, starting with DynamicDate. A non-empty DynamicDate
// selects dynamic mode; FromDate and Step are then ignored.
package model

import (
	"fmt"

	"github.com/specialistvlad/swimgen/internal/caldelta"
)

// Mode identifies how a series stamps its records.
type Mode int

const (
	// ModeAbsolute stamps records with `date` timestamps.
	ModeAbsolute Mode = iota
	// ModeDynamic stamps records with `dynamic_date` offsets.
	ModeDynamic
)

func (m Mode) String() string {
	switch m {
	case ModeDynamic:
		return "dynamic"
	default:
		return "absolute"
	}
}

// Series describes one operationsdata element.
type Series struct {
	Site      string
	Indicator string
	Records   int
	Values    []string

	DynamicDate string
	FromDate    string
	Step        caldelta.Delta

	FSInformation *FSInfo
}

// Mode reports the stamping mode selected by the series fields.
func (s Series) Mode() Mode {
	if s.DynamicDate != "" {
		return ModeDynamic
	}
	return ModeAbsolute
}

// Label identifies the series in logs and errors.
func (s Series) Label() string {
	if s.FSInformation != nil && s.FSInformation.FilePath != "" {
		return fmt.Sprintf("%s/%s (%s)", s.Site, s.Indicator, s.FSInformation.FilePath)
	}
	return fmt.Sprintf("%s/%s", s.Site, s.Indicator)
}
