package converter

import (
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/scoring"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"
)

func DecisionToRow(d *decision.Decision) (dbq.BookingDecision, error) {
	counter, err := CounterOfferToJSON(d.CounterOffer())
	if err != nil {
		return dbq.BookingDecision{}, err
	}
	reasons := make([]string, 0, len(d.Reasons()))
	for _, r := range d.Reasons() {
		reasons = append(reasons, string(r))
	}
	s := d.Score()
	return dbq.BookingDecision{
		ID:                    d.ID(),
		RequestID:             d.RequestID(),
		MerchantID:            d.MerchantID(),
		Action:                d.Action().String(),
		RevenueComponent:      s.Revenue,
		OccupancyComponent:    s.Occupancy,
		RelationshipComponent: s.Relationship,
		WeightedTotal:         s.WeightedTotal,
		ReasonCodes:           reasons,
		CounterOffer:          counter,
		Advisory:              d.Advisory(),
		ForecastRevenue:       d.ForecastRevenue(),
		DecidedAt:             pgconv.TimeToPgtype(d.DecidedAt()),
	}, nil
}

func DecisionFromRow(row dbq.BookingDecision) (*decision.Decision, error) {
	counter, err := CounterOfferFromJSON(row.CounterOffer)
	if err != nil {
		return nil, err
	}
	reasons := make([]decision.ReasonCode, 0, len(row.ReasonCodes))
	for _, r := range row.ReasonCodes {
		reasons = append(reasons, decision.ReasonCode(r))
	}
	return decision.Reconstruct(decision.State{
		ID: row.ID,
		Params: decision.Params{
			RequestID:  row.RequestID,
			MerchantID: row.MerchantID,
			Action:     decision.Action(row.Action),
			Score: scoring.Score{
				Revenue:       row.RevenueComponent,
				Occupancy:     row.OccupancyComponent,
				Relationship:  row.RelationshipComponent,
				WeightedTotal: row.WeightedTotal,
			},
			Reasons:         reasons,
			CounterOffer:    counter,
			Advisory:        row.Advisory,
			ForecastRevenue: row.ForecastRevenue,
		},
		DecidedAt: pgconv.TimeFromPgtype(row.DecidedAt),
	}), nil
}
