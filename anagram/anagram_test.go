package anagram

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(results <-chan string) []string {
	var out []string
	for r := range results {
		out = append(out, r)
	}
	return out
}

func testDictionary() *Dictionary {
	testDict := NewDictionary("testing")
	testDict.Words = []string{"pneumatic", "death", "hated", "foobar"}
	return testDict
}

func TestAnagrams(t *testing.T) {
	testDict := testDictionary()

	ad := newAnnotatedDict(testDict)
	assert.Len(t, ad, 4, "didn't annotate the whole test dictionary")

	results := collect(FindAnagrams(context.Background(), "Mitch Patenaude", nil, testDict))
	assert.Equal(t, []string{"pneumatic hated", "pneumatic death"}, results)

	noresults := collect(FindAnagrams(context.Background(), "Quixotic", nil, testDict))
	assert.Empty(t, noresults)
}

func TestAnagramsWithInclusions(t *testing.T) {
	testDict := testDictionary()

	results := collect(FindAnagrams(context.Background(), "Mitch Patenaude", []string{"Death", " "}, testDict))
	assert.Equal(t, []string{"Death pneumatic"}, results)

	results = collect(FindAnagrams(context.Background(), "Mitch Patenaude", []string{"foobar"}, testDict))
	assert.Empty(t, results, "inclusion outside the input must yield nothing")

	results = collect(FindAnagrams(context.Background(), "Mitch Patenaude", []string{"pneumatic death"}, testDict))
	assert.Equal(t, []string{"pneumatic death"}, results)
}

func TestAnagramsRepeatWords(t *testing.T) {
	d := NewDictionary("repeats")
	d.Words = []string{"ab", "a", "b", "", "--"}

	results := collect(FindAnagrams(context.Background(), "abab", nil, d))
	assert.Equal(t, []string{"ab ab", "ab b a", "b b a a"}, results)
}

func TestAnagramsCancel(t *testing.T) {
	d := NewDictionary("letters")
	for c := 'a'; c <= 'z'; c++ {
		d.Words = append(d.Words, string(c))
	}

	ctx, cancel := context.WithCancel(context.Background())
	results := FindAnagrams(ctx, "the quick brown fox jumps over the lazy dog", nil, d)

	first, ok := <-results
	require.True(t, ok)
	assert.NotEmpty(t, first)
	cancel()

	done := make(chan struct{})
	go func() {
		for range results {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop after cancel")
	}
}

func TestAnagramsFromEmbeddedDictionaries(t *testing.T) {
	mainDicts, _, err := ReadDictionaries()
	require.NoError(t, err)

	results := collect(FindAnagrams(context.Background(), "heart", nil, mainDicts[0]))
	assert.Contains(t, results, "heart")
	assert.Contains(t, results, "earth")
	for _, r := range results {
		assert.Equal(t, 5, len(r)-countSpaces(r), r)
	}
}

func countSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r == ' ' {
			n++
		}
	}
	return n
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "death pneumatic", Normalize("  Pneumatic DEATH! "))
	assert.Equal(t, Normalize("hated pneumatic"), Normalize("pneumatic  hated"))
	assert.Equal(t, "", Normalize("123"))
}
