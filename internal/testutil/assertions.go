package testutil

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// Elements returns the elements of a successful run that match an etree
// path, e.g. "/data/site" or "/data/operationsdata[@site='site1']/data".
func Elements(t *testing.T, result *HarnessResult, path string) []*etree.Element {
	t.Helper()
	require.NoError(t, result.Err, "run failed, logs:\n%s", result.LogOutput)
	require.NotNil(t, result.Doc)
	return result.Doc.FindElements(path)
}

// AssertElementCount checks how many elements of a successful run match path.
func AssertElementCount(t *testing.T, result *HarnessResult, path string, want int) {
	t.Helper()
	require.Len(t, Elements(t, result, path), want, "unexpected number of elements at %s", path)
}

// AttrValues collects one attribute from every element matching path, in
// document order.
func AttrValues(t *testing.T, result *HarnessResult, path, attr string) []string {
	t.Helper()
	var values []string
	for _, el := range Elements(t, result, path) {
		values = append(values, el.SelectAttrValue(attr, ""))
	}
	return values
}
