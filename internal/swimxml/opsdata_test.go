// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"errors"
	"testing"
	"time"

	"github.com/specialistvlad/swimgen/internal/caldelta"
	"github.com/specialistvlad/swimgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOperationsData_AbsoluteTimestamps(t *testing.T) {
	t.Parallel()

	b := New()
	err := b.AddOperationsData(model.Series{
		Site:      "site1",
		Indicator: "ecoli",
		Records:   3,
		Values:    []string{"valid", "invalid"},
		FromDate:  "2022-01-01",
		Step:      caldelta.Delta{Months: 1, Days: 1, Hours: 2},
	})
	require.NoError(t, err)

	ops := parseOutput(t, b).SelectElement("operationsdata")
	require.NotNil(t, ops)
	assert.Equal(t, []string{"site", "indicator"}, attrKeys(ops))
	assert.Equal(t, "site1", ops.SelectAttrValue("site", ""))
	assert.Equal(t, "ecoli", ops.SelectAttrValue("indicator", ""))

	records := ops.SelectElements("data")
	require.Len(t, records, 3)
	assert.Equal(t, []string{
		"2022-01-01 00:00:00",
		"2022-02-02 02:00:00",
		"2022-03-03 04:00:00",
	}, attrValues(records, "date"))
	for _, r := range records {
		assert.Equal(t, []string{"date", "value"}, attrKeys(r))
	}
}

func TestAddOperationsData_ZeroStepRepeatsTimestamp(t *testing.T) {
	t.Parallel()

	b := New()
	require.NoError(t, b.AddOperationsData(model.Series{
		Site: "s", Indicator: "i", Records: 2, Values: []string{"x"}, FromDate: "2021-06-30",
	}))

	records := parseOutput(t, b).SelectElement("operationsdata").SelectElements("data")
	assert.Equal(t, []string{"2021-06-30 00:00:00", "2021-06-30 00:00:00"}, attrValues(records, "date"))
}

func TestAddOperationsData_DynamicRecurrence(t *testing.T) {
	t.Parallel()

	now := time.Date(2022, time.December, 15, 10, 30, 0, 0, time.UTC)
	b := New(WithClock(fixedClock(now)))

	require.NoError(t, b.AddOperationsData(model.Series{
		Site:        "site2",
		Indicator:   "e.coli",
		Records:     4,
		Values:      []string{"pass", "fail"},
		DynamicDate: "-12 months",
		// Ignored in dynamic mode.
		FromDate: "not a date",
	}))

	records := parseOutput(t, b).SelectElement("operationsdata").SelectElements("data")
	require.Len(t, records, 4)
	assert.Equal(t, []string{"-12 months", "- 01 months", "- 01 months", "- 01 months"}, attrValues(records, "dynamic_date"))
	for _, r := range records {
		assert.Equal(t, []string{"dynamic_date", "value"}, attrKeys(r))
	}
}

func TestAddOperationsData_DynamicReadsClockOncePerSeries(t *testing.T) {
	t.Parallel()

	calls := 0
	clock := func() time.Time {
		calls++
		return time.Date(2023, time.Month(calls), 10, 0, 0, 0, 0, time.UTC)
	}
	b := New(WithClock(clock))

	series := model.Series{Site: "s", Indicator: "i", Records: 3, Values: []string{"v"}, DynamicDate: "-1 months"}
	require.NoError(t, b.AddOperationsData(series))
	require.NoError(t, b.AddOperationsData(series))
	assert.Equal(t, 2, calls)

	all := parseOutput(t, b).SelectElements("operationsdata")
	require.Len(t, all, 2)
	assert.Equal(t, []string{"-1 months", "- 02 months", "- 02 months"}, attrValues(all[0].SelectElements("data"), "dynamic_date"))
	assert.Equal(t, []string{"-1 months", "- 03 months", "- 03 months"}, attrValues(all[1].SelectElements("data"), "dynamic_date"))
}

func TestAddOperationsData_MalformedDate(t *testing.T) {
	t.Parallel()

	b := New()
	err := b.AddOperationsData(model.Series{
		Site: "s", Indicator: "i", Records: 5, Values: []string{"v"}, FromDate: "2022/01/01",
	})
	require.Error(t, err)

	var dateErr *DateParseError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "2022/01/01", dateErr.Value)

	var parseErr *time.ParseError
	assert.True(t, errors.As(err, &parseErr), "underlying time.ParseError should be reachable")

	assert.Equal(t, 0, b.Len(), "failed series must not be appended")
}

func TestAddOperationsData_MalformedDateWithZeroRecords(t *testing.T) {
	t.Parallel()

	b := New()
	err := b.AddOperationsData(model.Series{Site: "s", Indicator: "i", Records: 0, FromDate: ""})

	var dateErr *DateParseError
	assert.True(t, errors.As(err, &dateErr), "the start date is parsed before any record is produced")
}

func TestAddOperationsData_EmptyValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		series model.Series
	}{
		{
			name:   "absolute",
			series: model.Series{Site: "s", Indicator: "i", Records: 1, FromDate: "2022-01-01"},
		},
		{
			name:   "dynamic",
			series: model.Series{Site: "s", Indicator: "i", Records: 1, DynamicDate: "-3 months"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := New()
			err := b.AddOperationsData(tc.series)
			assert.ErrorIs(t, err, ErrEmptySelection)
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestAddOperationsData_EmptyValuesWithoutRecords(t *testing.T) {
	t.Parallel()

	b := New()
	require.NoError(t, b.AddOperationsData(model.Series{Site: "s", Indicator: "i", Records: 0, FromDate: "2022-01-01"}))

	ops := parseOutput(t, b).SelectElement("operationsdata")
	require.NotNil(t, ops)
	assert.Empty(t, ops.ChildElements())
}

func TestAddOperationsData_ValueMembership(t *testing.T) {
	t.Parallel()

	b := New(WithSeed(42))
	require.NoError(t, b.AddOperationsData(model.Series{
		Site: "s", Indicator: "i", Records: 1000, Values: []string{"A", "B"}, FromDate: "2022-01-01",
		Step: caldelta.Delta{Hours: 1},
	}))

	records := parseOutput(t, b).SelectElement("operationsdata").SelectElements("data")
	require.Len(t, records, 1000)
	for _, v := range attrValues(records, "value") {
		assert.Contains(t, []string{"A", "B"}, v)
	}
}

func TestAddOperationsData_ValuesAreEscaped(t *testing.T) {
	t.Parallel()

	b := New()
	require.NoError(t, b.AddOperationsData(model.Series{
		Site: "s", Indicator: "i", Records: 1, Values: []string{"<1"}, FromDate: "2022-01-01",
	}))

	text, err := b.Serialize()
	require.NoError(t, err)
	assert.Contains(t, text, `value="&lt;1"`)

	record := parseOutput(t, b).SelectElement("operationsdata").SelectElement("data")
	assert.Equal(t, "<1", record.SelectAttrValue("value", ""))
}
