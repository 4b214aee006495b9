package policy

import "errors"

var ErrInvalidAutomationLevel = errors.New("invalid automation level")

// AutomationLevel decides how far the arbiter may act without a manager.
type AutomationLevel string

const (
	// AutomationManual records advisory decisions only; a manager resolves every request.
	AutomationManual AutomationLevel = "manual"
	// AutomationSemiAuto accepts and declines, and counters borderline requests.
	AutomationSemiAuto AutomationLevel = "semi_auto"
	// AutomationFullAuto accepts or declines, never counters.
	AutomationFullAuto AutomationLevel = "full_auto"
)

func ParseAutomationLevel(s string) (AutomationLevel, error) {
	switch l := AutomationLevel(s); l {
	case AutomationManual, AutomationSemiAuto, AutomationFullAuto:
		return l, nil
	default:
		return "", ErrInvalidAutomationLevel
	}
}

func (l AutomationLevel) String() string { return string(l) }

// AppliesDecisions reports whether arbitration outcomes change request status.
func (l AutomationLevel) AppliesDecisions() bool {
	return l == AutomationSemiAuto || l == AutomationFullAuto
}

// MayCounter reports whether borderline scores produce a counter-offer instead of a decline.
func (l AutomationLevel) MayCounter() bool {
	return l != AutomationFullAuto
}
