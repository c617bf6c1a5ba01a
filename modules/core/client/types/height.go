package types

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
)

// Height is a monotonically increasing sequence number on the counterparty
// chain tracked by a client. Heights carry no revision information, a
// counterparty restarting from zero must be tracked by a fresh client.
type Height uint64

// NewHeight is a constructor for the Height type
func NewHeight(height uint64) Height {
	return Height(height)
}

// ZeroHeight is a helper for the zero valued Height
func ZeroHeight() Height {
	return Height(0)
}

// IsZero returns true if the height is zero
func (h Height) IsZero() bool {
	return h == 0
}

// Compare implements a three way comparison against another height, returning
// -1 if the receiver is smaller, 0 if equal and 1 if larger.
func (h Height) Compare(other Height) int64 {
	switch {
	case h < other:
		return -1
	case h > other:
		return 1
	default:
		return 0
	}
}

// LT returns true if the receiving height is less than the other height
func (h Height) LT(other Height) bool {
	return h.Compare(other) == -1
}

// LTE returns true if the receiving height is less than or equal to the other height
func (h Height) LTE(other Height) bool {
	return h.Compare(other) <= 0
}

// GT returns true if the receiving height is greater than the other height
func (h Height) GT(other Height) bool {
	return h.Compare(other) == 1
}

// GTE returns true if the receiving height is greater than or equal to the other height
func (h Height) GTE(other Height) bool {
	return h.Compare(other) >= 0
}

// EQ returns true if the receiving height is equal to the other height
func (h Height) EQ(other Height) bool {
	return h.Compare(other) == 0
}

// Decrement will return a new height with the value decremented. If the
// height is already at the lowest value, a false success flag is returned.
func (h Height) Decrement() (decremented Height, success bool) {
	if h.IsZero() {
		return ZeroHeight(), false
	}

	return h - 1, true
}

// Increment returns the height incremented by one
func (h Height) Increment() Height {
	return h + 1
}

// String returns the decimal string representation of the height
func (h Height) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// MustParseHeight will attempt to parse a string representation of a height
// and panic if parsing fails.
func MustParseHeight(heightStr string) Height {
	height, err := ParseHeight(heightStr)
	if err != nil {
		panic(err)
	}

	return height
}

// ParseHeight is a utility function that takes a string representation of the
// height and returns a Height value
func ParseHeight(heightStr string) (Height, error) {
	height, err := strconv.ParseUint(heightStr, 10, 64)
	if err != nil {
		return ZeroHeight(), errorsmod.Wrapf(ErrInvalidHeight, "invalid height %s. parse err: %s", heightStr, err)
	}

	return NewHeight(height), nil
}
