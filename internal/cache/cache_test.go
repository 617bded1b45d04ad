package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), ".aoc", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionHash(t *testing.T) {
	h := SessionHash("secret-cookie")
	assert.Len(t, h, 8)
	assert.Equal(t, h, SessionHash("secret-cookie"))
	assert.NotEqual(t, h, SessionHash("other-cookie"))
}

func TestInputRoundTrip(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.Input("abcd1234", 2023, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.PutInput("abcd1234", 2023, 1, "1\n2\n3\n"))
	got, ok, err := s.Input("abcd1234", 2023, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1\n2\n3\n", got)
}

func TestInputsKeyedBySession(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.PutInput("aaaa0000", 2023, 1, "mine"))

	_, ok, err := s.Input("bbbb1111", 2023, 1)
	require.NoError(t, err)
	assert.False(t, ok, "another session must not see cached input")
}

func TestInstructionsOverwrite(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.PutInstructions("abcd1234", 2023, 5, "part one only"))
	require.NoError(t, s.PutInstructions("abcd1234", 2023, 5, "part one and two"))

	got, ok, err := s.Instructions("abcd1234", 2023, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "part one and two", got)
}

func TestSubmissionRoundTrip(t *testing.T) {
	s := openStore(t)
	sub := Submission{Answer: "42", Verdict: "wrong", Message: "That's not the right answer."}
	require.NoError(t, s.PutSubmission("abcd1234", 2023, 3, 1, sub))

	got, ok, err := s.Submission("abcd1234", 2023, 3, 1, "42")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sub, got)

	// A different answer for the same part is a cache miss.
	_, ok, err = s.Submission("abcd1234", 2023, 3, 1, "43")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorrectSubmission(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.PutSubmission("abcd1234", 2023, 3, 1,
		Submission{Answer: "41", Verdict: "wrong", Message: "no"}))
	require.NoError(t, s.PutSubmission("abcd1234", 2023, 3, 1,
		Submission{Answer: "42", Verdict: "correct", Message: "That's the right answer!"}))

	got, ok, err := s.CorrectSubmission("abcd1234", 2023, 3, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "42", got.Answer)

	_, ok, err = s.CorrectSubmission("abcd1234", 2023, 3, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStarsRoundTrip(t *testing.T) {
	s := openStore(t)
	stars := map[int]int{1: 2, 2: 2, 3: 1}
	require.NoError(t, s.PutStars("abcd1234", 2023, stars))

	got, ok, err := s.Stars("abcd1234", 2023)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stars, got)

	_, ok, err = s.Stars("abcd1234", 2022)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoriesAndClear(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.PutInput("abcd1234", 2023, 1, "x"))
	require.NoError(t, s.PutSubmission("abcd1234", 2023, 1, 1,
		Submission{Answer: "1", Verdict: "wrong", Message: "no"}))

	cats, err := s.Categories()
	require.NoError(t, err)
	counts := map[string]int{}
	for _, c := range cats {
		counts[c.Table] = c.Count
	}
	assert.Equal(t, 1, counts["inputs"])
	assert.Equal(t, 1, counts["submissions"])
	assert.Equal(t, 0, counts["stats"])

	require.NoError(t, s.ClearTables("inputs"))
	_, ok, err := s.Input("abcd1234", 2023, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Submissions survive an inputs-only clear.
	_, ok, err = s.Submission("abcd1234", 2023, 1, 1, "1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Error(t, s.ClearTables("users; DROP TABLE inputs"))
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
