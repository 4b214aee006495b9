package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPartnerType = errors.New("invalid partner type")
	ErrInvalidStatus      = errors.New("invalid booking request status")
)

type PartnerType string

const (
	PartnerTourOperator  PartnerType = "tour_operator"
	PartnerAccommodation PartnerType = "accommodation"
	PartnerDirect        PartnerType = "direct"
)

func ParsePartnerType(s string) (PartnerType, error) {
	switch p := PartnerType(strings.ToLower(strings.TrimSpace(s))); p {
	case PartnerTourOperator, PartnerAccommodation, PartnerDirect:
		return p, nil
	default:
		return "", ErrInvalidPartnerType
	}
}

func (p PartnerType) String() string { return string(p) }

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCountered Status = "countered"
	StatusExpired   Status = "expired"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCountered, StatusExpired:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined || s == StatusExpired
}

// DecidedByEngine marks transitions applied by the arbiter rather than a manager.
const DecidedByEngine = "engine"
