package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/questionbank"
	"github.com/abhisek/triviaz/internal/quiz"
)

// resetFlags restores every flag to its default so tests do not leak
// state through the package-level command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const smallBank = `{
  "version": "v1.2.0",
  "questions": [
    {"prompt": "2 + 2?", "correct_answer": "4", "misdirectors": ["3", "5", "22"]},
    {"prompt": "Capital of France?", "correct_answer": "Paris", "misdirectors": ["Rome", "Berlin"]}
  ]
}`

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "triviaz (devel)")
}

func TestBankList_Default(t *testing.T) {
	out, err := execute(t, "bank", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "10 questions (built-in, v1.0.0)")
}

func TestBankList_JSON(t *testing.T) {
	out, err := execute(t, "bank", "list", "--json", "--bank", writeBank(t, smallBank))
	require.NoError(t, err)

	b, err := questionbank.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "v1.2.0", b.Version())

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Contains(t, raw, "questions")
}

func TestBankList_BadBank(t *testing.T) {
	_, err := execute(t, "bank", "list", "--bank", writeBank(t, `{"version":"v2.0.0","questions":[]}`))
	assert.Error(t, err)
}

func TestBankValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"valid", smallBank, nil},
		{"wrong major", `{"version":"v2.0.0","questions":[{"prompt":"a","correct_answer":"b","misdirectors":["c"]}]}`, questionbank.ErrUnsupportedVersion},
		{"schema violation", `{"version":"v1.0.0","questions":[{"prompt":"a"}]}`, questionbank.ErrInvalidBank},
		{"answer among misdirectors", `{"version":"v1.0.0","questions":[{"prompt":"a","correct_answer":"b","misdirectors":["b"]}]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBank(t, tt.content)
			out, err := execute(t, "bank", "validate", path)

			switch {
			case tt.name == "valid":
				require.NoError(t, err)
				assert.Contains(t, out, "OK (2 questions, v1.2.0)")
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestBankValidate_RequiresFile(t *testing.T) {
	_, err := execute(t, "bank", "validate")
	assert.Error(t, err)
}

func TestLoadConfig_PlayFlags(t *testing.T) {
	playCmd.RunE = func(*cobra.Command, []string) error { return nil }
	t.Cleanup(func() { playCmd.RunE = playRunE })

	_, err := execute(t, "play", "--level", "Hard", "--count", "-1", "--timed", "--seconds", "45", "--cycle")
	require.NoError(t, err)

	opts := cfg.Round.QuizOptions()
	assert.Equal(t, quiz.LevelHard, opts.Level)
	assert.Equal(t, quiz.Unlimited, opts.QuestionCount)
	assert.Equal(t, 45, opts.TimeLimit)
	assert.True(t, cfg.Round.Cycle)
}

func TestLoadConfig_RejectsInvalidFlags(t *testing.T) {
	playCmd.RunE = func(*cobra.Command, []string) error { return nil }
	t.Cleanup(func() { playCmd.RunE = playRunE })

	_, err := execute(t, "play", "--count", "-3")
	assert.Error(t, err)
}
