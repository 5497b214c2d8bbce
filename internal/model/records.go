// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Indicator is a leaf record with no children.
type Indicator struct {
	Name  string
	Type  string
	Class string
}

// IndicatorCategory maps an ordered list of indicator names under one class.
type IndicatorCategory struct {
	Name       string
	Class      string
	Indicators []string
}

// Site is a location record. Parent, StartDate and EndDate are optional; an
// empty string means the attribute is absent.
type Site struct {
	Name       string
	Type       string
	Categories []string
	Parent     string
	StartDate  string
	EndDate    string
}

// AccessGroup grants its users access to the listed site/category pairs.
type AccessGroup struct {
	Name  string
	Users []string
	Sites []SiteGrant
}

// SiteGrant is one entry of an access group's ordered site mapping.
type SiteGrant struct {
	Site       string
	Categories []string
}
