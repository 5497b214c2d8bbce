package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/specialistvlad/swimgen/internal/app"
	"github.com/stretchr/testify/require"
)

// FixedNow is the clock reading used by every harness run, so dynamic series
// produce stable offsets.
var FixedNow = time.Date(2022, time.December, 15, 10, 0, 0, 0, time.UTC)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	// Output is the generated XML, empty when the run failed before writing.
	Output string
	// Doc is Output parsed back, nil when there is no output.
	Doc *etree.Document
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context and seed.
func RunIntegrationTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, 1)
}

// RunIntegrationTestWithContext writes files (keyed by path relative to a
// temporary definitions directory), runs the app over that directory and
// collects the log output and generated document.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, seed int64) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	defsDir := filepath.Join(tmpDir, "defs")
	require.NoError(t, os.Mkdir(defsDir, 0o755))

	for name, content := range files {
		filePath := filepath.Join(defsDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	outPath := filepath.Join(tmpDir, "out.xml")
	cfg, err := app.NewConfig(app.Config{
		DefinitionPaths: []string{defsDir},
		OutputPath:      outPath,
		Seed:            seed,
		LogLevel:        "debug",
		LogFormat:       "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, cfg, app.DefaultLoader(), app.WithClock(func() time.Time { return FixedNow }))
	runErr := testApp.Run(ctx)

	if os.Getenv("SWIMGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{LogOutput: logBuffer.String(), Err: runErr}
	if runErr != nil {
		return result
	}

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	result.Output = string(data)
	result.Doc = etree.NewDocument()
	require.NoError(t, result.Doc.ReadFromBytes(data))
	return result
}
