package inventory

// Clone returns an independent copy of the inventory.
func (inv LetterInventory) Clone() *LetterInventory {
	c := inv
	return &c
}

// Equal reports whether both inventories hold the same counts.
func (inv LetterInventory) Equal(other *LetterInventory) bool {
	return inv.counts == other.counts
}

// SubsetOf reports whether every count in inv is no larger than the
// matching count in other.
func (inv LetterInventory) SubsetOf(other *LetterInventory) bool {
	for i, count := range inv.counts {
		if count > other.counts[i] {
			return false
		}
	}
	return true
}

// Plus returns a new inventory holding the slot-wise sum of inv and other.
func (inv LetterInventory) Plus(other *LetterInventory) (*LetterInventory, error) {
	result := New()
	for i, count := range inv.counts {
		sum := int(count) + int(other.counts[i])
		if sum > MaxCount {
			return nil, newError("plus", Letter(i), ErrOverflow)
		}
		result.counts[i] = int16(sum)
	}
	return result, nil
}

// Minus returns a new inventory holding inv with the letters of other
// removed. It fails with ErrUnderflow unless other is a subset of inv.
func (inv LetterInventory) Minus(other *LetterInventory) (*LetterInventory, error) {
	result := New()
	for i, count := range inv.counts {
		oc := other.counts[i]
		if oc > count {
			return nil, newError("minus", Letter(i), ErrUnderflow)
		}
		result.counts[i] = count - oc
	}
	return result, nil
}
