package inventory

import "strings"

// Parse reads the bracketed form produced by String. The letters between
// the brackets must be lowercase and in non-decreasing order.
func Parse(s string) (*LetterInventory, error) {
	body, ok := strings.CutPrefix(s, "[")
	if ok {
		body, ok = strings.CutSuffix(body, "]")
	}
	if !ok {
		return nil, newError("parse", 0, ErrMalformed)
	}

	inv := New()
	prev := 'a'
	for _, c := range body {
		if _, valid := letterIndex(c); !valid {
			return nil, newError("parse", c, ErrInvalidCharacter)
		}
		if c < 'a' || c > 'z' || c < prev {
			return nil, newError("parse", c, ErrMalformed)
		}
		prev = c
		if err := inv.Add(c); err != nil {
			return nil, &Error{Op: "parse", Char: c, Err: ErrOverflow}
		}
	}
	return inv, nil
}

// MarshalText implements encoding.TextMarshaler using the bracketed form.
func (inv LetterInventory) MarshalText() ([]byte, error) {
	return []byte(inv.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (inv *LetterInventory) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*inv = *parsed
	return nil
}
