package capacity

import (
	"errors"
	"fmt"

	"group-booking-arbiter/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrSlotNotProvisioned = errors.New("slot capacity not provisioned")
	ErrLedgerContention   = errors.New("capacity ledger contention")
	ErrInvalidCovers      = errors.New("covers must be positive")
	ErrInvalidPlan        = errors.New("capacity plan must have positive total and non-negative walk-in floor")
)

// Key identifies one service slot of one merchant.
type Key struct {
	MerchantID uuid.UUID
	Date       schedule.Date
	Slot       schedule.Slot
}

func NewKey(merchantID uuid.UUID, date schedule.Date, slot schedule.Slot) Key {
	return Key{MerchantID: merchantID, Date: date, Slot: slot}
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.MerchantID, k.Date, k.Slot)
}

// Plan is the seat budget of a slot: physical seats and the walk-in covers kept free for
// forecast walk-in demand.
type Plan struct {
	Total       int
	WalkinFloor int
}

func (p Plan) Validate() error {
	if p.Total <= 0 || p.WalkinFloor < 0 {
		return ErrInvalidPlan
	}
	return nil
}

type Snapshot struct {
	Key                      Key
	TotalCapacity            int
	ReservedByGroups         int
	ReservedByWalkinForecast int
	Version                  int64
}

// Free is the number of seats a new group could still take without breaching the walk-in floor.
func (s Snapshot) Free() int {
	free := s.TotalCapacity - s.ReservedByGroups - s.ReservedByWalkinForecast
	if free < 0 {
		return 0
	}
	return free
}

// CanAdmit checks the admission invariant for additional covers.
func (s Snapshot) CanAdmit(covers int) bool {
	return covers > 0 && s.ReservedByGroups+covers+s.ReservedByWalkinForecast <= s.TotalCapacity
}

// GroupUtilization is the share of seats already held by groups.
func (s Snapshot) GroupUtilization() float64 {
	if s.TotalCapacity <= 0 {
		return 1
	}
	return float64(s.ReservedByGroups) / float64(s.TotalCapacity)
}

// Token is proof of a reservation; releasing it returns the covers to the slot.
type Token struct {
	Key    Key
	Holder string
	Covers int
}

func (t Token) IsZero() bool { return t.Holder == "" }
