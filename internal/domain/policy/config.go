package policy

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNegativeWeight      = errors.New("weights must be non-negative")
	ErrInvalidMinMargin    = errors.New("min margin percent must be within [0,100]")
	ErrInvalidMaxGroup     = errors.New("max group percent must be within (0,100]")
	ErrInvalidSlotCapacity = errors.New("slot capacity must be positive")
	ErrNegativeCost        = errors.New("cost per cover must be non-negative")
	ErrPartnerListConflict = errors.New("partner cannot be both preferred and blocked")
	ErrEmptyPartnerID      = errors.New("partner id cannot be empty")
)

const (
	DefaultWeightRevenue       = 50
	DefaultWeightOccupancy     = 30
	DefaultWeightRelationships = 20
	DefaultMinMarginPercent    = 20
	DefaultMaxGroupPercent     = 60
)

type Weights struct {
	Revenue       float64
	Occupancy     float64
	Relationships float64
}

func (w Weights) Sum() float64 {
	return w.Revenue + w.Occupancy + w.Relationships
}

// Defaults carries service-level values used when a merchant has no stored config.
type Defaults struct {
	SlotCapacity int
}

// State is the flat form of a BookingConfig used for persistence and caching.
type State struct {
	MerchantID        uuid.UUID
	AutomationLevel   AutomationLevel
	Weights           Weights
	MinMarginPercent  float64
	MaxGroupPercent   float64
	BlackoutDates     []schedule.Date
	PreferredPartners []string
	BlockedPartners   []string
	SlotCapacity      map[schedule.Slot]int
	CostPerCover      float64
	MenuCosts         map[string]float64
	HolidayDates      []schedule.Date
	UpdatedAt         time.Time
}

type BookingConfig struct {
	merchantID        uuid.UUID
	automation        AutomationLevel
	weights           Weights
	minMarginPercent  float64
	maxGroupPercent   float64
	blackoutDates     schedule.DateSet
	preferredPartners map[string]struct{}
	blockedPartners   map[string]struct{}
	slotCapacity      map[schedule.Slot]int
	costPerCover      float64
	menuCosts         map[string]float64
	holidayDates      schedule.DateSet
	isDefault         bool
	updatedAt         time.Time
}

// DefaultConfig is the conservative config used when a merchant never configured automation.
func DefaultConfig(merchantID uuid.UUID, defaults Defaults) *BookingConfig {
	capacity := make(map[schedule.Slot]int, 3)
	for _, s := range schedule.AllSlots() {
		capacity[s] = defaults.SlotCapacity
	}
	return &BookingConfig{
		merchantID: merchantID,
		automation: AutomationManual,
		weights: Weights{
			Revenue:       DefaultWeightRevenue,
			Occupancy:     DefaultWeightOccupancy,
			Relationships: DefaultWeightRelationships,
		},
		minMarginPercent:  DefaultMinMarginPercent,
		maxGroupPercent:   DefaultMaxGroupPercent,
		blackoutDates:     schedule.NewDateSet(),
		preferredPartners: map[string]struct{}{},
		blockedPartners:   map[string]struct{}{},
		slotCapacity:      capacity,
		menuCosts:         map[string]float64{},
		holidayDates:      schedule.NewDateSet(),
		isDefault:         true,
	}
}

func ReconstructBookingConfig(s State) *BookingConfig {
	return &BookingConfig{
		merchantID:        s.MerchantID,
		automation:        s.AutomationLevel,
		weights:           s.Weights,
		minMarginPercent:  s.MinMarginPercent,
		maxGroupPercent:   s.MaxGroupPercent,
		blackoutDates:     schedule.NewDateSet(s.BlackoutDates...),
		preferredPartners: toSet(s.PreferredPartners),
		blockedPartners:   toSet(s.BlockedPartners),
		slotCapacity:      cloneMap(s.SlotCapacity),
		costPerCover:      s.CostPerCover,
		menuCosts:         cloneMap(s.MenuCosts),
		holidayDates:      schedule.NewDateSet(s.HolidayDates...),
		updatedAt:         s.UpdatedAt,
	}
}

func (c *BookingConfig) MerchantID() uuid.UUID            { return c.merchantID }
func (c *BookingConfig) AutomationLevel() AutomationLevel { return c.automation }
func (c *BookingConfig) Weights() Weights                 { return c.weights }
func (c *BookingConfig) MinMarginPercent() float64        { return c.minMarginPercent }
func (c *BookingConfig) MaxGroupPercent() float64         { return c.maxGroupPercent }
func (c *BookingConfig) IsDefault() bool                  { return c.isDefault }
func (c *BookingConfig) UpdatedAt() time.Time             { return c.updatedAt }

func (c *BookingConfig) IsBlocked(partnerID string) bool {
	_, ok := c.blockedPartners[partnerID]
	return ok
}

func (c *BookingConfig) IsPreferred(partnerID string) bool {
	_, ok := c.preferredPartners[partnerID]
	return ok
}

func (c *BookingConfig) IsBlackout(d schedule.Date) bool { return c.blackoutDates.Contains(d) }
func (c *BookingConfig) IsHoliday(d schedule.Date) bool  { return c.holidayDates.Contains(d) }

// CapacityFor returns the seat capacity configured for a slot, 0 when none.
func (c *BookingConfig) CapacityFor(slot schedule.Slot) int {
	return c.slotCapacity[slot]
}

// CostPerCover returns the estimated cost of one cover for a menu. The second value is false
// when the merchant has not configured any cost basis.
func (c *BookingConfig) CostPerCover(menuType string) (float64, bool) {
	if cost, ok := c.menuCosts[strings.ToLower(menuType)]; ok && menuType != "" {
		return cost, true
	}
	if c.costPerCover > 0 {
		return c.costPerCover, true
	}
	return 0, false
}

func (c *BookingConfig) State() State {
	return State{
		MerchantID:        c.merchantID,
		AutomationLevel:   c.automation,
		Weights:           c.weights,
		MinMarginPercent:  c.minMarginPercent,
		MaxGroupPercent:   c.maxGroupPercent,
		BlackoutDates:     c.blackoutDates.Sorted(),
		PreferredPartners: sortedKeys(c.preferredPartners),
		BlockedPartners:   sortedKeys(c.blockedPartners),
		SlotCapacity:      cloneMap(c.slotCapacity),
		CostPerCover:      c.costPerCover,
		MenuCosts:         cloneMap(c.menuCosts),
		HolidayDates:      c.holidayDates.Sorted(),
		UpdatedAt:         c.updatedAt,
	}
}

func (c *BookingConfig) Validate() error {
	w := c.weights
	if w.Revenue < 0 || w.Occupancy < 0 || w.Relationships < 0 {
		return ErrNegativeWeight
	}
	if c.minMarginPercent < 0 || c.minMarginPercent > 100 {
		return ErrInvalidMinMargin
	}
	if c.maxGroupPercent <= 0 || c.maxGroupPercent > 100 {
		return ErrInvalidMaxGroup
	}
	for _, seats := range c.slotCapacity {
		if seats <= 0 {
			return ErrInvalidSlotCapacity
		}
	}
	if c.costPerCover < 0 {
		return ErrNegativeCost
	}
	for _, cost := range c.menuCosts {
		if cost < 0 {
			return ErrNegativeCost
		}
	}
	for id := range c.preferredPartners {
		if id == "" {
			return ErrEmptyPartnerID
		}
		if _, ok := c.blockedPartners[id]; ok {
			return ErrPartnerListConflict
		}
	}
	for id := range c.blockedPartners {
		if id == "" {
			return ErrEmptyPartnerID
		}
	}
	return nil
}

// Patch is a partial config update; nil fields keep their current value.
type Patch struct {
	AutomationLevel     *AutomationLevel
	WeightRevenue       *float64
	WeightOccupancy     *float64
	WeightRelationships *float64
	MinMarginPercent    *float64
	MaxGroupPercent     *float64
	BlackoutDates       *[]schedule.Date
	PreferredPartners   *[]string
	BlockedPartners     *[]string
	SlotCapacity        map[schedule.Slot]int
	CostPerCover        *float64
	MenuCosts           map[string]float64
	HolidayDates        *[]schedule.Date
}

// Apply returns a new validated config with the patch applied; c is left untouched.
func (c *BookingConfig) Apply(p Patch, now time.Time) (*BookingConfig, error) {
	s := c.State()

	if p.AutomationLevel != nil {
		if _, err := ParseAutomationLevel(string(*p.AutomationLevel)); err != nil {
			return nil, err
		}
		s.AutomationLevel = *p.AutomationLevel
	}
	s.Weights.Revenue = patch.Coalesce(p.WeightRevenue, s.Weights.Revenue)
	s.Weights.Occupancy = patch.Coalesce(p.WeightOccupancy, s.Weights.Occupancy)
	s.Weights.Relationships = patch.Coalesce(p.WeightRelationships, s.Weights.Relationships)
	s.MinMarginPercent = patch.Coalesce(p.MinMarginPercent, s.MinMarginPercent)
	s.MaxGroupPercent = patch.Coalesce(p.MaxGroupPercent, s.MaxGroupPercent)
	s.BlackoutDates = patch.Coalesce(p.BlackoutDates, s.BlackoutDates)
	s.PreferredPartners = patch.Coalesce(p.PreferredPartners, s.PreferredPartners)
	s.BlockedPartners = patch.Coalesce(p.BlockedPartners, s.BlockedPartners)
	s.CostPerCover = patch.Coalesce(p.CostPerCover, s.CostPerCover)
	s.HolidayDates = patch.Coalesce(p.HolidayDates, s.HolidayDates)
	for slot := range p.SlotCapacity {
		if !slot.IsValid() {
			return nil, schedule.ErrInvalidSlot
		}
	}
	s.SlotCapacity = patch.MergeMap(s.SlotCapacity, p.SlotCapacity)
	s.MenuCosts = patch.MergeMap(s.MenuCosts, lowerKeys(p.MenuCosts))
	s.MerchantID = c.merchantID
	s.UpdatedAt = now

	next := ReconstructBookingConfig(s)
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

func lowerKeys(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[strings.TrimSpace(id)] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return out
}
