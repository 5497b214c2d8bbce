// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// parseOutput serializes b and parses the text back, returning the root.
func parseOutput(t *testing.T, b *Builder) *etree.Element {
	t.Helper()

	text, err := b.Serialize()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(text))
	root := doc.Root()
	require.NotNil(t, root)
	require.Equal(t, "data", root.Tag)
	return root
}

func attrKeys(el *etree.Element) []string {
	keys := make([]string, 0, len(el.Attr))
	for _, a := range el.Attr {
		keys = append(keys, a.Key)
	}
	return keys
}

func attrValues(els []*etree.Element, key string) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.SelectAttrValue(key, ""))
	}
	return out
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
