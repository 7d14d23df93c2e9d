package strategy

import (
	"fmt"
	"math/bits"
	"strings"

	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
)

// HoldMask records which hand slots are kept
// Bit i set means slot i is held.
type HoldMask uint8

// mask constants
const (
	NoneHeld HoldMask = 0
	AllHeld  HoldMask = 1<<handanalyzer.HandSize - 1

	// NumMasks is the number of distinct hold decisions for a hand
	NumMasks = int(AllHeld) + 1
)

// ParseHoldMask parses a mask written as five 0/1 characters, slot 0 first
func ParseHoldMask(s string) (HoldMask, error) {
	s = strings.TrimSpace(s)
	if len(s) != handanalyzer.HandSize {
		return NoneHeld, fmt.Errorf("hold mask %q must be %d characters", s, handanalyzer.HandSize)
	}

	var m HoldMask
	for i, r := range s {
		switch r {
		case '1':
			m |= 1 << uint(i)
		case '0':
		default:
			return NoneHeld, fmt.Errorf("hold mask %q may only contain 0 and 1", s)
		}
	}

	return m, nil
}

// Valid returns true if the mask only addresses slots 0-4
func (m HoldMask) Valid() bool {
	return m <= AllHeld
}

// Holds returns true if slot i is held
func (m HoldMask) Holds(i int) bool {
	if i < 0 || i >= handanalyzer.HandSize {
		return false
	}

	return m&(1<<uint(i)) != 0
}

// Toggle flips slot i
func (m HoldMask) Toggle(i int) HoldMask {
	return m ^ (1 << uint(i))
}

// Count returns the number of held slots
func (m HoldMask) Count() int {
	return bits.OnesCount8(uint8(m & AllHeld))
}

// Apply returns the held cards in slot order
func (m HoldMask) Apply(hand []deck.Card) []deck.Card {
	held := make([]deck.Card, 0, m.Count())
	for i, card := range hand {
		if m.Holds(i) {
			held = append(held, card)
		}
	}

	return held
}

func (m HoldMask) String() string {
	var sb strings.Builder
	for i := 0; i < handanalyzer.HandSize; i++ {
		if m.Holds(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// MarshalText encodes the mask in its 0/1 form
func (m HoldMask) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mask from its 0/1 form
func (m *HoldMask) UnmarshalText(b []byte) error {
	mask, err := ParseHoldMask(string(b))
	if err != nil {
		return err
	}

	*m = mask
	return nil
}
