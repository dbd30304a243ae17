// Package inventory provides LetterInventory, a case-insensitive count of
// the 26 letters of the English alphabet.
//
// Every slot holds a 16-bit count between 0 and MaxCount. Operations that
// would push a slot outside that range fail with ErrUnderflow or ErrOverflow
// and leave the inventory unchanged.
//
// A LetterInventory is not safe for concurrent use; callers sharing one
// across goroutines must guard it themselves.
package inventory

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// AlphabetSize is the number of slots in an inventory.
	AlphabetSize = 26

	// MaxCount is the largest count a single slot can hold.
	MaxCount = math.MaxInt16
)

// LetterInventory counts occurrences of the letters a through z, ignoring
// case. The zero value is an empty inventory ready to use.
type LetterInventory struct {
	counts [AlphabetSize]int16
}

// New returns an empty inventory.
func New() *LetterInventory {
	return &LetterInventory{}
}

// FromText builds an inventory by adding every character of text in order.
// It fails on the first character that is not an ASCII letter, so spaces
// and punctuation are rejected; use FromPhrase to skip them.
func FromText(text string) (*LetterInventory, error) {
	inv := New()
	for _, c := range text {
		if err := inv.Add(c); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// FromPhrase builds an inventory from the ASCII letters of text, skipping
// everything else.
func FromPhrase(text string) (*LetterInventory, error) {
	inv := New()
	for _, c := range text {
		if _, ok := letterIndex(c); !ok {
			continue
		}
		if err := inv.Add(c); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// Index returns the slot for c: 0 for 'a' or 'A' through 25 for 'z' or 'Z'.
func Index(c rune) (int, error) {
	return resolve("index", c)
}

// Letter returns the lowercase letter stored at slot i. It panics if i is
// outside [0, AlphabetSize).
func Letter(i int) rune {
	if i < 0 || i >= AlphabetSize {
		panic("inventory: letter index out of range")
	}
	return rune('a' + i)
}

func letterIndex(c rune) (int, bool) {
	if c >= utf8.RuneSelf {
		return 0, false
	}
	lower := unicode.ToLower(c)
	if lower < 'a' || lower > 'z' {
		return 0, false
	}
	return int(lower - 'a'), true
}

func resolve(op string, c rune) (int, error) {
	i, ok := letterIndex(c)
	if !ok {
		return 0, newError(op, c, ErrInvalidCharacter)
	}
	return i, nil
}

// Add records one more occurrence of c.
func (inv *LetterInventory) Add(c rune) error {
	i, err := resolve("add", c)
	if err != nil {
		return err
	}
	if inv.counts[i] == MaxCount {
		return newError("add", c, ErrOverflow)
	}
	inv.counts[i]++
	return nil
}

// Subtract removes one occurrence of c. It fails with ErrUnderflow when c
// has no occurrences left.
func (inv *LetterInventory) Subtract(c rune) error {
	i, err := resolve("subtract", c)
	if err != nil {
		return err
	}
	if inv.counts[i] == 0 {
		return newError("subtract", c, ErrUnderflow)
	}
	inv.counts[i]--
	return nil
}

// Set overwrites the count for c.
func (inv *LetterInventory) Set(c rune, count int) error {
	i, err := resolve("set", c)
	if err != nil {
		return err
	}
	if count < 0 {
		return &Error{Op: "set", Char: c, Count: count, Err: ErrInvalidArgument}
	}
	if count > MaxCount {
		return &Error{Op: "set", Char: c, Count: count, Err: ErrOverflow}
	}
	inv.counts[i] = int16(count)
	return nil
}

// Get returns the count for c.
func (inv LetterInventory) Get(c rune) (int, error) {
	i, err := resolve("get", c)
	if err != nil {
		return 0, err
	}
	return int(inv.counts[i]), nil
}

// Contains reports whether c has at least one occurrence.
func (inv LetterInventory) Contains(c rune) (bool, error) {
	i, err := resolve("contains", c)
	if err != nil {
		return false, err
	}
	return inv.counts[i] > 0, nil
}

// Size returns the total number of letters in the inventory.
func (inv LetterInventory) Size() int {
	total := 0
	for _, count := range inv.counts {
		total += int(count)
	}
	return total
}

// IsEmpty reports whether every count is zero.
func (inv LetterInventory) IsEmpty() bool {
	for _, count := range inv.counts {
		if count > 0 {
			return false
		}
	}
	return true
}

// Counts returns a copy of every slot, indexed like Index.
func (inv LetterInventory) Counts() [AlphabetSize]int {
	var out [AlphabetSize]int
	for i, count := range inv.counts {
		out[i] = int(count)
	}
	return out
}

// String renders the inventory as its letters in alphabetical order, each
// repeated by its count and wrapped in brackets, e.g. "[aaaabkm]".
func (inv LetterInventory) String() string {
	var b strings.Builder
	b.Grow(inv.Size() + 2)
	b.WriteByte('[')
	for i, count := range inv.counts {
		for n := int16(0); n < count; n++ {
			b.WriteRune(Letter(i))
		}
	}
	b.WriteByte(']')
	return b.String()
}
