// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"github.com/beevik/etree"
	"github.com/specialistvlad/swimgen/internal/caldelta"
	"github.com/specialistvlad/swimgen/internal/model"
)

// AddOperationsData appends an operationsdata element holding series.Records
// data children. On error nothing is appended.
func (b *Builder) AddOperationsData(series model.Series) error {
	el := etree.NewElement(operationsDataTag)
	el.CreateAttr("site", series.Site)
	el.CreateAttr("indicator", series.Indicator)

	var err error
	switch series.Mode() {
	case model.ModeDynamic:
		err = b.fillDynamic(el, series)
	default:
		err = b.fillAbsolute(el, series)
	}
	if err != nil {
		return err
	}

	b.root.AddChild(el)
	return nil
}

// fillAbsolute stamps each record with a timestamp that starts at FromDate
// and advances by Step after every record.
func (b *Builder) fillAbsolute(el *etree.Element, series model.Series) error {
	date, err := caldelta.ParseDate(series.FromDate)
	if err != nil {
		return &DateParseError{Value: series.FromDate, Err: err}
	}

	for _, stamp := range caldelta.Sequence(date, series.Step, series.Records) {
		value, err := b.choose(series.Values)
		if err != nil {
			return err
		}
		data := el.CreateElement(dataTag)
		data.CreateAttr("date", caldelta.FormatTimestamp(stamp))
		data.CreateAttr("value", value)
	}
	return nil
}

// fillDynamic stamps the first record with DynamicDate and every later one
// with the offset derived from the clock reading taken before the loop.
func (b *Builder) fillDynamic(el *etree.Element, series model.Series) error {
	now := b.now()
	offset := series.DynamicDate

	for i := 0; i < series.Records; i++ {
		value, err := b.choose(series.Values)
		if err != nil {
			return err
		}
		data := el.CreateElement(dataTag)
		data.CreateAttr("dynamic_date", offset)
		data.CreateAttr("value", value)
		offset = caldelta.NextDynamicOffset(now)
	}
	return nil
}

// choose draws one candidate uniformly at random.
func (b *Builder) choose(values []string) (string, error) {
	if len(values) == 0 {
		return "", ErrEmptySelection
	}
	return values[b.rng.IntN(len(values))], nil
}
