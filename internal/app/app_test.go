package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/swimgen/internal/config"
	"github.com/specialistvlad/swimgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHCL = `
indicator "ecoli" {
  type  = "microbiological"
  class = "bacteria"
}

site "site1" {
  type       = "wtp"
  categories = ["bacteria"]
}

operations_data "site1" "ecoli" {
  records   = 3
  values    = ["<1"]
  from_date = "2022-01-01"
  step {
    months = 1
  }
}
`

func fixedNow() time.Time {
	return time.Date(2022, time.December, 15, 10, 0, 0, 0, time.UTC)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type stubLoader struct {
	model *config.Model
	err   error
	paths []string
}

func (s *stubLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	s.paths = paths
	return s.model, s.err
}

func TestApp_Run_WritesFixture(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	defs := writeFile(t, dir, "main.hcl", sampleHCL)
	out := filepath.Join(dir, "out.xml")
	cfg, err := NewConfig(Config{DefinitionPaths: []string{defs}, OutputPath: out, Seed: 1, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	logs := &bytes.Buffer{}

	// --- Act ---
	err = NewApp(logs, cfg, DefaultLoader(), WithClock(fixedNow)).Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	xml := string(data)
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" ?>`))
	assert.Contains(t, xml, `<indicator name="ecoli" type="microbiological" class="bacteria"/>`)
	assert.Contains(t, xml, `date="2022-03-01 00:00:00"`)
	assert.Contains(t, xml, `value="&lt;1"`)
	assert.Contains(t, logs.String(), "Fixture written.")
	assert.Contains(t, logs.String(), "records=3")
}

func TestApp_Run_Reproducible(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	defs := writeFile(t, dir, "main.hcl", sampleHCL)
	run := func(name string) []byte {
		out := filepath.Join(dir, name)
		cfg, err := NewConfig(Config{DefinitionPaths: []string{defs}, OutputPath: out, Seed: 7})
		require.NoError(t, err)
		require.NoError(t, NewApp(&bytes.Buffer{}, cfg, DefaultLoader(), WithClock(fixedNow)).Run(context.Background()))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return data
	}

	// --- Act ---
	first := run("a.xml")
	second := run("b.xml")

	// --- Assert ---
	assert.Equal(t, string(first), string(second))
}

func TestApp_Run_LoaderError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	loaderErr := errors.New("boom")
	stub := &stubLoader{err: loaderErr}
	out := filepath.Join(t.TempDir(), "out.xml")
	cfg, err := NewConfig(Config{DefinitionPaths: []string{"defs"}, OutputPath: out})
	require.NoError(t, err)

	// --- Act ---
	err = NewApp(&bytes.Buffer{}, cfg, stub).Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, loaderErr)
	assert.Contains(t, err.Error(), "failed to load definitions")
	assert.Equal(t, []string{"defs"}, stub.paths)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file should be written on failure")
}

func TestApp_Run_BuildErrorWritesNothing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	m := config.NewModel()
	m.Series = []model.Series{{Site: "s", Indicator: "i", Records: 1, FromDate: "2022-13-45"}}
	out := filepath.Join(t.TempDir(), "out.xml")
	cfg, err := NewConfig(Config{DefinitionPaths: []string{"defs"}, OutputPath: out})
	require.NoError(t, err)

	// --- Act ---
	err = NewApp(&bytes.Buffer{}, cfg, &stubLoader{model: m}).Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build document")
	assert.Contains(t, err.Error(), "2022-13-45")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Run_EmptyModelWarns(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := filepath.Join(t.TempDir(), "out.xml")
	cfg, err := NewConfig(Config{DefinitionPaths: []string{"defs"}, OutputPath: out})
	require.NoError(t, err)
	logs := &bytes.Buffer{}

	// --- Act ---
	err = NewApp(logs, cfg, &stubLoader{model: config.NewModel()}).Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "No definitions found")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<data/>")
}

func TestDefaultLoader_Extensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{".hcl", ".yaml", ".yml"}, DefaultLoader().Extensions())
}
