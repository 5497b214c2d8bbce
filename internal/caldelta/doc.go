// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package caldelta implements calendar-aware date stepping for generated
// time series.
//
// A Delta is applied the way calendar-delta libraries do it rather than by
// counting days: years and months move the calendar position first and the
// day of month is clamped to the length of the target month, then days and
// hours are added as absolute durations. Stepping is cumulative, so a clamp
// in one step is carried into every later step (Jan 31 -> Feb 28 -> Mar 28).
//
// The package also owns the text formats shared with the import consumer: the
// `YYYY-MM-DD` input date, the `YYYY-MM-DD HH:MM:SS` record timestamp, and the
// `- MM months` dynamic offset.
package caldelta
