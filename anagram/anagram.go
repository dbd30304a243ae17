// Package anagram finds multi-word anagrams of a phrase by subtracting
// word inventories from the phrase's letter inventory.
package anagram

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/tien-han/LetterInventory/inventory"
)

type dictPair struct {
	word string
	inv  *inventory.LetterInventory
}

type annotatedDict []dictPair

func newAnnotatedDict(d *Dictionary) annotatedDict {
	ad := make(annotatedDict, 0, len(d.Words))

	for _, word := range d.Words {
		inv, err := inventory.FromPhrase(word)
		if err != nil || inv.IsEmpty() {
			continue // a word without letters would never shrink the target
		}
		ad = append(ad, dictPair{word, inv})
	}

	return ad
}

func (ad annotatedDict) Filter(target *inventory.LetterInventory) annotatedDict {
	retVal := make(annotatedDict, 0, len(ad)/2) // half is probably overly generous

	for _, dp := range ad {
		if dp.inv.SubsetOf(target) {
			retVal = append(retVal, dp)
		}
	}

	return retVal
}

func (ad annotatedDict) Swap(i, j int) {
	ad[i], ad[j] = ad[j], ad[i]
}

func (ad annotatedDict) Len() int {
	return len(ad)
}

func (ad annotatedDict) Less(i, j int) bool {
	// sort first by length (decending) then by alphabet (decending)

	if len(ad[i].word) == len(ad[j].word) {
		return ad[i].word > ad[j].word
	}
	return len(ad[i].word) > len(ad[j].word)
}

// FindAnagrams streams every combination of dictionary words that uses
// exactly the letters of input, after removing the letters of the included
// phrases. Included phrases lead every result. The channel is closed when
// the search is exhausted or ctx is done.
func FindAnagrams(ctx context.Context, input string, included []string, dictionary *Dictionary) <-chan string {
	outputChan := make(chan string, 10)

	go makeAnagrams(ctx, input, included, dictionary, outputChan)

	return outputChan
}

func makeAnagrams(ctx context.Context, input string, included []string, dictionary *Dictionary, output chan<- string) {
	defer close(output)

	target, err := inventory.FromPhrase(input)
	if err != nil {
		slog.Warn("cannot take inventory of input", "input", input, "err", err)
		return
	}

	prefix := make([]string, 0, len(included))
	for _, phrase := range included {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		phraseInv, err := inventory.FromPhrase(phrase)
		if err != nil {
			slog.Warn("cannot take inventory of inclusion", "phrase", phrase, "err", err)
			return
		}
		target, err = target.Minus(phraseInv)
		if err != nil {
			slog.Debug("inclusion is not part of the input", "phrase", phrase, "input", input)
			return
		}
		prefix = append(prefix, phrase)
	}

	filtered := newAnnotatedDict(dictionary).Filter(target)

	sort.Sort(filtered) // for efficientcy we need ot sort decending by size

	slog.Debug("searching anagrams", "input", input, "target", target.String(), "candidates", len(filtered))

	findTuples(ctx, strings.Join(prefix, " "), target, filtered, output)
}

// findTuples reports false once ctx is done.
func findTuples(ctx context.Context, current string, target *inventory.LetterInventory, dict annotatedDict, output chan<- string) bool {
	if target.IsEmpty() {
		if current == "" {
			return true
		}
		select {
		case output <- current:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for index, dp := range dict {
		if ctx.Err() != nil {
			return false
		}

		var trial string
		if current == "" {
			trial = dp.word
		} else {
			trial = current + " " + dp.word
		}

		newTarget, err := target.Minus(dp.inv)
		if err != nil {
			panic(err) // this shouldn't be possible
		}
		newDict := dict[index:].Filter(newTarget)

		if !findTuples(ctx, trial, newTarget, newDict, output) {
			return false
		}
	}
	return true
}

// Normalize lowercases str, drops everything but letters and spaces, and
// sorts the words, so two phrases with the same words compare equal.
func Normalize(str string) string {
	b := strings.Builder{}
	for _, r := range str {
		if unicode.IsSpace(r) || unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	words := strings.Fields(b.String())
	sort.Strings(words)

	return strings.Join(words, " ")
}
