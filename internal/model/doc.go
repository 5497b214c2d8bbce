// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of the records that make up a
// Swim import fixture: indicators, indicator categories, sites, access groups,
// and operations data series.
//
// # Core Concepts
//
//   - Indicator: a named measurable attribute (for example a water quality
//     parameter) tagged with a type and a class.
//
//   - IndicatorCategory: a grouping of indicators under a shared class.
//
//   - Site: a physical or logical location, optionally nested under a parent
//     site by name, with optional validity dates and mapped categories.
//
//   - AccessGroup: a named bundle that grants users visibility into specific
//     site and category combinations.
//
//   - Series: a synthesized time series of sampled values for one indicator
//     at one site, stamped either with absolute timestamps or with a dynamic
//     date offset understood by the import consumer.
//
// Every list in this package is ordered and the order is meaningful to the
// consumer. References between records (parents, categories, indicators) are
// names only and are never resolved or validated here.
package model
