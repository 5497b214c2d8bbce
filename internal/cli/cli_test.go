package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/swimgen/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		wantExit   bool
		wantCode   int
		wantOutput string
	}{
		{
			name: "positional path uses defaults",
			args: []string{"defs"},
			want: &app.Config{DefinitionPaths: []string{"defs"}, OutputPath: "test.xml", Seed: 1, LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "all flags",
			args: []string{"-defs", "a.hcl", "-o", "out.xml", "-seed", "42", "-log-level", "DEBUG", "-log-format", "json"},
			want: &app.Config{DefinitionPaths: []string{"a.hcl"}, OutputPath: "out.xml", Seed: 42, LogFormat: "json", LogLevel: "debug"},
		},
		{
			name: "shorthand and positional paths combine",
			args: []string{"-d", "a.hcl", "-output", "x.xml", "b.yaml", "c"},
			want: &app.Config{DefinitionPaths: []string{"a.hcl", "b.yaml", "c"}, OutputPath: "x.xml", Seed: 1, LogFormat: "text", LogLevel: "info"},
		},
		{
			name:       "no path prints usage",
			args:       []string{},
			wantExit:   true,
			wantOutput: "Usage:",
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantExit: true,
		},
		{
			name:     "invalid log format",
			args:     []string{"-log-format", "xml", "defs"},
			wantCode: 2,
		},
		{
			name:     "invalid log level",
			args:     []string{"-log-level", "trace", "defs"},
			wantCode: 2,
		},
		{
			name:     "unknown flag",
			args:     []string{"-bogus", "defs"},
			wantCode: 2,
		},
		{
			name:     "bad seed",
			args:     []string{"-seed", "abc", "defs"},
			wantCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			got, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
