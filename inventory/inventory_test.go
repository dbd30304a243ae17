package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tien-han/LetterInventory/inventory"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func TestIndex(t *testing.T) {
	t.Run("both cases map to the same slot", func(t *testing.T) {
		for i, c := range alphabet {
			lower, err := inventory.Index(c)
			require.NoError(t, err)
			upper, err := inventory.Index(c - 'a' + 'A')
			require.NoError(t, err)

			assert.Equal(t, i, lower)
			assert.Equal(t, lower, upper)
			assert.Equal(t, c, inventory.Letter(i))
		}
	})

	t.Run("non letters are rejected", func(t *testing.T) {
		for _, c := range []rune{'?', ' ', '0', '@', '[', '`', '{', 'é', 'ß', 'K', 0} {
			_, err := inventory.Index(c)
			require.ErrorIs(t, err, inventory.ErrInvalidCharacter, "rune %q", c)
			got, ok := inventory.OffendingChar(err)
			assert.True(t, ok, "rune %q", c)
			assert.Equal(t, c, got)
		}
	})

	t.Run("letter panics out of range", func(t *testing.T) {
		assert.Panics(t, func() { inventory.Letter(-1) })
		assert.Panics(t, func() { inventory.Letter(inventory.AlphabetSize) })
	})
}

func TestNew(t *testing.T) {
	inv := inventory.New()
	assert.Equal(t, 0, inv.Size())
	assert.True(t, inv.IsEmpty())
	assert.Equal(t, "[]", inv.String())

	var zero inventory.LetterInventory
	assert.True(t, zero.IsEmpty())
	assert.True(t, zero.Equal(inv))
}

func TestAddOnce(t *testing.T) {
	for _, c := range alphabet + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		inv := inventory.New()
		require.NoError(t, inv.Add(c))

		count, err := inv.Get(c)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		has, err := inv.Contains(c)
		require.NoError(t, err)
		assert.True(t, has)
		assert.Equal(t, 1, inv.Size())
		assert.False(t, inv.IsEmpty())
	}
}

func TestSizeCountsAdds(t *testing.T) {
	inv := inventory.New()
	letters := "zZyxAAbqQqmM"
	for _, c := range letters {
		require.NoError(t, inv.Add(c))
	}
	assert.Equal(t, len(letters), inv.Size())
	assert.Equal(t, "[aabmmqqqxyzz]", inv.String())
}

func TestFromText(t *testing.T) {
	t.Run("washington state", func(t *testing.T) {
		inv, err := inventory.FromText("WashingtonState")
		require.NoError(t, err)
		assert.Equal(t, "[aaeghinnosstttw]", inv.String())
		assert.Equal(t, 15, inv.Size())

		s, err := inv.Get('S')
		require.NoError(t, err)
		assert.Equal(t, 2, s)
	})

	t.Run("fails on the first non letter", func(t *testing.T) {
		inv, err := inventory.FromText("Washington State!")
		assert.Nil(t, inv)
		require.ErrorIs(t, err, inventory.ErrInvalidCharacter)

		c, ok := inventory.OffendingChar(err)
		require.True(t, ok)
		assert.Equal(t, ' ', c)
	})

	t.Run("empty text", func(t *testing.T) {
		inv, err := inventory.FromText("")
		require.NoError(t, err)
		assert.True(t, inv.IsEmpty())
	})
}

func TestFromPhrase(t *testing.T) {
	inv, err := inventory.FromPhrase("Washington State!  (1889)")
	require.NoError(t, err)
	assert.Equal(t, "[aaeghinnosstttw]", inv.String())

	inv, err = inventory.FromPhrase("naïve café")
	require.NoError(t, err)
	assert.Equal(t, "[aaceefnv]", inv.String())
}

func TestInvalidCharacterEverywhere(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Add('a'))
	before := inv.String()

	checks := map[string]func() error{
		"add":      func() error { return inv.Add('?') },
		"subtract": func() error { return inv.Subtract('?') },
		"set":      func() error { return inv.Set('?', 3) },
		"get": func() error {
			_, err := inv.Get('?')
			return err
		},
		"contains": func() error {
			_, err := inv.Contains('?')
			return err
		},
	}

	for op, check := range checks {
		t.Run(op, func(t *testing.T) {
			err := check()
			require.ErrorIs(t, err, inventory.ErrInvalidCharacter)

			var invErr *inventory.Error
			require.True(t, errors.As(err, &invErr))
			assert.Equal(t, op, invErr.Op)
			assert.Equal(t, '?', invErr.Char)
			assert.Equal(t, op+` '?': invalid character`, err.Error())
		})
	}
	assert.Equal(t, before, inv.String())
}

func TestSubtract(t *testing.T) {
	inv, err := inventory.FromText("aab")
	require.NoError(t, err)

	require.NoError(t, inv.Subtract('A'))
	require.NoError(t, inv.Subtract('b'))
	assert.Equal(t, "[a]", inv.String())

	err = inv.Subtract('b')
	require.ErrorIs(t, err, inventory.ErrUnderflow)
	assert.Equal(t, `subtract 'b': count underflow`, err.Error())

	count, err := inv.Get('b')
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, inv.Size())
}

func TestSet(t *testing.T) {
	inv := inventory.New()

	require.NoError(t, inv.Set('Z', 5))
	count, err := inv.Get('z')
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.NoError(t, inv.Set('a', 3))

	err = inv.Set('a', -1)
	require.ErrorIs(t, err, inventory.ErrInvalidArgument)
	assert.Equal(t, `set 'a' to -1: invalid argument`, err.Error())
	count, err = inv.Get('a')
	require.NoError(t, err)
	assert.Equal(t, 3, count, "a failed set leaves the slot alone")

	err = inv.Set('a', inventory.MaxCount+1)
	require.ErrorIs(t, err, inventory.ErrOverflow)
	count, err = inv.Get('a')
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 8, inv.Size())

	require.NoError(t, inv.Set('a', inventory.MaxCount))
	require.NoError(t, inv.Set('z', 0))
	assert.Equal(t, inventory.MaxCount, inv.Size())

	has, err := inv.Contains('z')
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSetChecksLetterBeforeCount(t *testing.T) {
	err := inventory.New().Set('1', -1)
	assert.ErrorIs(t, err, inventory.ErrInvalidCharacter)
}

func TestNulIsReported(t *testing.T) {
	err := inventory.New().Add(0)
	require.ErrorIs(t, err, inventory.ErrInvalidCharacter)
	assert.Equal(t, `add '\x00': invalid character`, err.Error())

	c, ok := inventory.OffendingChar(err)
	require.True(t, ok)
	assert.Equal(t, rune(0), c)

	_, ok = inventory.OffendingChar(inventory.New().Subtract('a'))
	assert.True(t, ok)
	_, err = inventory.Parse("abc")
	_, ok = inventory.OffendingChar(err)
	assert.False(t, ok, "malformed text has no single offending character")
}

func TestAddOverflow(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Set('q', inventory.MaxCount))

	err := inv.Add('Q')
	require.ErrorIs(t, err, inventory.ErrOverflow)

	count, err := inv.Get('q')
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxCount, count)
}

func TestString(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Set('m', 1))
	require.NoError(t, inv.Set('a', 4))
	require.NoError(t, inv.Set('k', 1))
	require.NoError(t, inv.Set('b', 1))
	assert.Equal(t, "[aaaabkm]", inv.String())

	t.Run("sorted and matches counts", func(t *testing.T) {
		inv, err := inventory.FromPhrase("The quick brown fox jumps over the lazy dog")
		require.NoError(t, err)

		s := inv.String()
		require.Equal(t, byte('['), s[0])
		require.Equal(t, byte(']'), s[len(s)-1])
		body := s[1 : len(s)-1]
		assert.Len(t, body, inv.Size())

		rebuilt := inventory.New()
		for i, c := range body {
			if i > 0 {
				assert.LessOrEqual(t, rune(body[i-1]), c)
			}
			require.NoError(t, rebuilt.Add(c))
		}
		assert.True(t, rebuilt.Equal(inv))
	})
}

func TestCounts(t *testing.T) {
	inv, err := inventory.FromText("abba")
	require.NoError(t, err)

	counts := inv.Counts()
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 2, counts[1])
	assert.Zero(t, counts[2])

	counts[0] = 99
	got, err := inv.Get('a')
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
