package questionbank

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testBank(t *testing.T, n int) *Bank {
	t.Helper()
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Prompt:        "Question " + string(rune('A'+i)),
			CorrectAnswer: "right",
			Misdirectors:  []string{"wrong 1", "wrong 2", "wrong 3"},
		}
	}
	b, err := New(qs)
	require.NoError(t, err)
	return b
}

func prompts(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Prompt
	}
	return out
}

func TestDefault_HasOriginalBank(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Equal(t, 10, b.Len())
	assert.Equal(t, "v1.0.0", b.Version())

	all := b.All()
	assert.Equal(t, "Franklin D. Roosevelt", all[0].CorrectAnswer)
	assert.Equal(t, "Great Britain", all[9].CorrectAnswer)
}

func TestAll_ReturnsCopy(t *testing.T) {
	b := Default()
	all := b.All()
	all[0].Prompt = "tampered"
	all[0].Misdirectors[0] = "tampered"

	fresh := b.All()
	assert.NotEqual(t, "tampered", fresh[0].Prompt)
	assert.NotEqual(t, "tampered", fresh[0].Misdirectors[0])
}

func TestSelectRandomSubset_FewerThanBank(t *testing.T) {
	b := Default()
	bankPrompts := prompts(b.All())

	for c := 0; c <= b.Len(); c++ {
		got := b.SelectRandomSubset(c, seeded(uint64(c)))
		require.Len(t, got, c)

		seen := make(map[string]bool)
		for _, q := range got {
			assert.False(t, seen[q.Prompt], "duplicate question %q for count %d", q.Prompt, c)
			seen[q.Prompt] = true
			assert.Contains(t, bankPrompts, q.Prompt)
		}
	}
}

func TestSelectRandomSubset_MoreThanBank(t *testing.T) {
	b := Default()
	got := b.SelectRandomSubset(b.Len()+7, seeded(1))

	assert.ElementsMatch(t, prompts(b.All()), prompts(got))
}

func TestSelectRandomSubset_OrderIsRandomized(t *testing.T) {
	b := Default()
	original := prompts(b.All())

	// Across a handful of seeds at least one permutation must differ from
	// insertion order.
	differs := false
	for seed := uint64(0); seed < 5; seed++ {
		if !assert.ObjectsAreEqual(original, prompts(b.SelectRandomSubset(b.Len(), seeded(seed)))) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "expected a shuffled order")
}

func TestSelectRandomSubset_NegativeCount(t *testing.T) {
	assert.Empty(t, Default().SelectRandomSubset(-3, nil))
}

func TestDeck_EveryQuestionOncePerCycle(t *testing.T) {
	b := testBank(t, 6)
	d := b.NewDeck(seeded(42))

	const cycles = 4
	counts := make(map[string]int)
	prev := ""
	for c := 0; c < cycles; c++ {
		window := make(map[string]bool)
		for i := 0; i < b.Len(); i++ {
			q, ok := d.Draw()
			require.True(t, ok)
			assert.False(t, window[q.Prompt], "repeat within cycle %d: %q", c, q.Prompt)
			assert.NotEqual(t, prev, q.Prompt, "same question dealt twice in a row")
			window[q.Prompt] = true
			counts[q.Prompt]++
			prev = q.Prompt
		}
	}

	assert.Len(t, counts, b.Len())
	for p, n := range counts {
		assert.Equal(t, cycles, n, "question %q", p)
	}
	assert.Equal(t, cycles, d.Cycle())
}

func TestDeck_SingleQuestion(t *testing.T) {
	b := testBank(t, 1)
	d := b.NewDeck(nil)
	for i := 0; i < 3; i++ {
		q, ok := d.Draw()
		require.True(t, ok)
		assert.Equal(t, "Question A", q.Prompt)
	}
}

func TestDeck_EmptyBank(t *testing.T) {
	d := (&Bank{}).NewDeck(nil)
	_, ok := d.Draw()
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		wantErr   string
	}{
		{
			name:    "empty bank",
			wantErr: "empty",
		},
		{
			name: "correct answer among misdirectors",
			questions: []Question{
				{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{"b", "a"}},
			},
			wantErr: "listed as a misdirector",
		},
		{
			name: "duplicate prompt",
			questions: []Question{
				{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{"b"}},
				{Prompt: "p", CorrectAnswer: "c", Misdirectors: []string{"d"}},
			},
			wantErr: "duplicate prompt",
		},
		{
			name: "no misdirectors",
			questions: []Question{
				{Prompt: "p", CorrectAnswer: "a"},
			},
			wantErr: "at least one misdirector",
		},
		{
			name: "blank misdirector",
			questions: []Question{
				{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{" "}},
			},
			wantErr: "misdirector 0 is empty",
		},
		{
			name: "valid",
			questions: []Question{
				{Prompt: "p", CorrectAnswer: "a", Misdirectors: []string{"b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.questions)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyIsSentinel(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrEmptyBank)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name: "valid",
			data: `{"version":"v1.2.0","questions":[{"prompt":"p","correct_answer":"a","misdirectors":["b"]}]}`,
		},
		{
			name:    "not json",
			data:    `{`,
			wantErr: ErrInvalidBank,
		},
		{
			name:    "missing misdirectors",
			data:    `{"version":"v1.0.0","questions":[{"prompt":"p","correct_answer":"a"}]}`,
			wantErr: ErrInvalidBank,
		},
		{
			name:    "unknown field",
			data:    `{"version":"v1.0.0","questions":[{"prompt":"p","correct_answer":"a","misdirectors":["b"],"hint":"x"}]}`,
			wantErr: ErrInvalidBank,
		},
		{
			name:    "future major version",
			data:    `{"version":"v2.0.0","questions":[{"prompt":"p","correct_answer":"a","misdirectors":["b"]}]}`,
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse([]byte(tt.data))
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 1, b.Len())
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(path, defaultBankJSON, 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), b.Len())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestMarshalJSON_LoadsBack(t *testing.T) {
	data, err := json.MarshalIndent(Default(), "", "  ")
	require.NoError(t, err)

	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().All(), b.All())
	assert.Equal(t, "v1.0.0", b.Version())

	built := testBank(t, 2)
	data, err = json.Marshal(built)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version":"v1.0.0"`)
}
