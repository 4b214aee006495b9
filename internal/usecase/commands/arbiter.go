package commands

import (
	"context"
	"errors"
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/domain/scoring"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxReserveAttempts = 2

// verdict is the arbiter's outcome before it is recorded.
type verdict struct {
	action   decision.Action
	score    scoring.Score
	reasons  []decision.ReasonCode
	offer    *booking.CounterOffer
	forecast float64
	token    capacity.Token
}

func (uc *bookingUseCaseImpl) ProcessBookingRequest(ctx context.Context, merchantID, requestID uuid.UUID) (*ProcessResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.settings.ProcessTimeout)
	defer cancel()

	res, err := uc.process(ctx, merchantID, requestID)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, errs.Mark(err, ErrTimeout)
	}
	return res, err
}

func (uc *bookingUseCaseImpl) process(ctx context.Context, merchantID, requestID uuid.UUID) (*ProcessResult, error) {
	req, err := uc.load(ctx, merchantID, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status() != booking.StatusPending {
		return nil, errs.Mark(errs.New("only pending requests can be processed, got "+req.Status().String()), ErrInvalidState)
	}

	now := uc.clock.Now()
	if req.IsExpiredOn(schedule.DateOf(now)) {
		if err := uc.expire(ctx, req, now); err != nil {
			return nil, err
		}
		return nil, ErrRequestExpired
	}

	cfg, err := uc.policies.Config(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	decisionID := uuid.New()
	v, err := uc.arbitrate(ctx, req, cfg, decisionID.String())
	if err != nil {
		return nil, err
	}

	d := decision.NewWithID(decisionID, decision.Params{
		RequestID:       req.ID(),
		MerchantID:      merchantID,
		Action:          v.action,
		Score:           v.score,
		Reasons:         v.reasons,
		CounterOffer:    v.offer,
		Advisory:        !cfg.AutomationLevel().AppliesDecisions(),
		ForecastRevenue: v.forecast,
	}, now)

	if err := uc.record(ctx, req, d, v, now); err != nil {
		uc.release(ctx, v.token)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking request arbitrated",
		"request_id", req.ID(),
		"merchant_id", merchantID,
		"action", d.Action(),
		"advisory", d.Advisory(),
		"weighted_total", d.Score().WeightedTotal,
		"reasons", d.Reasons())

	result := &ProcessResult{
		Request:  queries.NewBookingRequestView(req),
		Decision: queries.NewDecisionView(d),
	}
	uc.publish(ctx, shared.EventBookingDecided, req, result)
	return result, nil
}

// arbitrate runs gates, scoring, reservation and the counter search. Capacity is only reserved
// when the outcome will be applied.
func (uc *bookingUseCaseImpl) arbitrate(ctx context.Context, req *booking.BookingRequest, cfg *policy.BookingConfig, holder string) (verdict, error) {
	terms := req.Terms()
	level := cfg.AutomationLevel()

	if reason, fired := uc.evaluator.Gate(req, cfg, terms, cfg.CapacityFor(terms.Slot)); fired {
		return decline(scoring.Score{}, 0, reason), nil
	}

	views, err := uc.planner.Neighbourhood(ctx, cfg, terms.Date, terms.Slot)
	if err != nil {
		return verdict{}, errs.Mark(err, ErrCapacityUnavailable)
	}
	home := views[terms.Slot]
	assessment := uc.evaluator.Assess(req, cfg, terms, home)
	forecast := home.Baseline.ForecastRevenue(terms.PartySize)

	switch assessment.Outcome {
	case scoring.OutcomeAccept:
		if !level.AppliesDecisions() {
			return verdict{action: decision.ActionAccept, score: assessment.Score, forecast: forecast}, nil
		}
		return uc.acceptOrRace(ctx, req, cfg, views, assessment, forecast, holder)

	case scoring.OutcomeDeadBand:
		if !level.MayCounter() {
			return decline(assessment.Score, forecast, decision.ReasonDeadBand), nil
		}
		if offer, reason, ok := uc.evaluator.Counter(req, cfg, views); ok {
			return counter(assessment.Score, forecast, offer, decision.ReasonDeadBand, reason), nil
		}
		return decline(assessment.Score, forecast, decision.ReasonDeadBand, decision.ReasonNoViableCounter), nil

	default:
		return decline(assessment.Score, forecast, decision.ReasonBelowThreshold), nil
	}
}

// acceptOrRace reserves the requested covers. A lost race is retried once against a fresh
// snapshot; when it is lost again semi-automatic merchants get a counter-offer if one fits.
func (uc *bookingUseCaseImpl) acceptOrRace(
	ctx context.Context,
	req *booking.BookingRequest,
	cfg *policy.BookingConfig,
	views map[schedule.Slot]decision.SlotView,
	assessment decision.Assessment,
	forecast float64,
	holder string,
) (verdict, error) {
	terms := req.Terms()

	for attempt := 1; attempt <= maxReserveAttempts; attempt++ {
		key := views[terms.Slot].Snapshot.Key
		token, err := uc.ledger.Reserve(ctx, key, terms.PartySize, holder)
		if err == nil {
			return verdict{action: decision.ActionAccept, score: assessment.Score, forecast: forecast, token: token}, nil
		}
		if !errors.Is(err, capacity.ErrCapacityExceeded) && !errors.Is(err, capacity.ErrLedgerContention) {
			// the reply may be lost after the ledger applied the hold
			uc.release(ctx, capacity.Token{Key: key, Holder: holder, Covers: terms.PartySize})
			return verdict{}, errs.Mark(err, ErrCapacityUnavailable)
		}

		uc.logger.DebugContext(ctx, "capacity race", "request_id", req.ID(), "attempt", attempt, "error", err.Error())
		views, err = uc.planner.Neighbourhood(ctx, cfg, terms.Date, terms.Slot)
		if err != nil {
			return verdict{}, errs.Mark(err, ErrCapacityUnavailable)
		}
		assessment = uc.evaluator.Assess(req, cfg, terms, views[terms.Slot])
		if assessment.Outcome != scoring.OutcomeAccept {
			break
		}
	}

	if cfg.AutomationLevel().MayCounter() {
		if offer, reason, ok := uc.evaluator.Counter(req, cfg, views); ok {
			return counter(assessment.Score, forecast, offer, decision.ReasonCapacityRace, reason), nil
		}
	}
	return decline(assessment.Score, forecast, decision.ReasonCapacityRace), nil
}

// record stores the decision and, unless it is advisory, the request transition in one
// transaction.
func (uc *bookingUseCaseImpl) record(ctx context.Context, req *booking.BookingRequest, d *decision.Decision, v verdict, now time.Time) error {
	expected := req.Version()
	if !d.Advisory() {
		if err := applyVerdict(req, v, d.ID().String(), now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if !d.Advisory() {
			if err := tx.BookingRequests().Update(ctx, tx.DB(), req, expected); err != nil {
				return err
			}
		}
		return tx.Decisions().Create(ctx, tx.DB(), d)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrConcurrentUpdate)
		}
		return errs.Mark(err, ErrPersistenceFailure)
	}
	return nil
}

func applyVerdict(req *booking.BookingRequest, v verdict, holder string, now time.Time) error {
	switch v.action {
	case decision.ActionAccept:
		return req.Accept(booking.DecidedByEngine, holder, now)
	case decision.ActionCounter:
		return req.Counter(*v.offer, booking.DecidedByEngine, now)
	default:
		return req.Decline(booking.DecidedByEngine, now)
	}
}

func decline(s scoring.Score, forecast float64, reasons ...decision.ReasonCode) verdict {
	return verdict{action: decision.ActionDecline, score: s, reasons: reasons, forecast: forecast}
}

func counter(s scoring.Score, forecast float64, offer *booking.CounterOffer, reasons ...decision.ReasonCode) verdict {
	return verdict{action: decision.ActionCounter, score: s, reasons: reasons, offer: offer, forecast: forecast}
}
