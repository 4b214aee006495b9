package schedule

import "errors"

var ErrInvalidSlot = errors.New("invalid service slot")

// Slot is a service period of the day. Slots are ordered; adjacency is by that order.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

var orderedSlots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

func AllSlots() []Slot {
	out := make([]Slot, len(orderedSlots))
	copy(out, orderedSlots)
	return out
}

func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if !slot.IsValid() {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

func (s Slot) IsValid() bool {
	return s.index() >= 0
}

func (s Slot) String() string { return string(s) }

// Adjacent returns the slots directly before and after s on the same day.
func (s Slot) Adjacent() []Slot {
	i := s.index()
	if i < 0 {
		return nil
	}
	var out []Slot
	if i > 0 {
		out = append(out, orderedSlots[i-1])
	}
	if i < len(orderedSlots)-1 {
		out = append(out, orderedSlots[i+1])
	}
	return out
}

func (s Slot) index() int {
	for i, o := range orderedSlots {
		if o == s {
			return i
		}
	}
	return -1
}
