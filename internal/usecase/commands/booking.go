package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=mock_commands group-booking-arbiter/internal/usecase/commands BookingCommands,ConfigCommands,PerformanceCommands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/pkg/clock"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingSettings struct {
	ProcessTimeout  time.Duration
	ExpiryBatchSize int
}

type ProcessResult struct {
	Request  *queries.BookingRequestView
	Decision *queries.DecisionView
}

type StatusChange struct {
	Action booking.ManualAction
	Actor  string
	// ExpectedVersion, when set, rejects the change if the request moved on since the caller read it.
	ExpectedVersion *int
}

type BookingCommands interface {
	CreateBookingRequest(ctx context.Context, p booking.NewRequestParams) (*queries.BookingRequestView, error)
	ProcessBookingRequest(ctx context.Context, merchantID, requestID uuid.UUID) (*ProcessResult, error)
	UpdateBookingRequestStatus(ctx context.Context, merchantID, requestID uuid.UUID, change StatusChange) (*queries.BookingRequestView, error)
	// ExpireOverdue expires unresolved requests whose effective date passed and returns how many.
	ExpireOverdue(ctx context.Context) (int, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	ledger    shared.CapacityLedger
	planner   *shared.SlotPlanner
	policies  *shared.PolicyStore
	evaluator *decision.Evaluator
	events    shared.EventPublisher
	clock     clock.Clock
	settings  BookingSettings
	logger    *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	ledger shared.CapacityLedger,
	planner *shared.SlotPlanner,
	policies *shared.PolicyStore,
	evaluator *decision.Evaluator,
	events shared.EventPublisher,
	clk clock.Clock,
	settings BookingSettings,
	logger *slog.Logger,
) BookingCommands {
	if settings.ProcessTimeout <= 0 {
		settings.ProcessTimeout = 3 * time.Second
	}
	if settings.ExpiryBatchSize <= 0 {
		settings.ExpiryBatchSize = 200
	}
	return &bookingUseCaseImpl{
		uow:       uow,
		ledger:    ledger,
		planner:   planner,
		policies:  policies,
		evaluator: evaluator,
		events:    events,
		clock:     clk,
		settings:  settings,
		logger:    logger,
	}
}

func (uc *bookingUseCaseImpl) CreateBookingRequest(ctx context.Context, p booking.NewRequestParams) (*queries.BookingRequestView, error) {
	req, err := booking.NewBookingRequest(p, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BookingRequests().Create(ctx, tx.DB(), req)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking request created",
		"request_id", req.ID(),
		"merchant_id", req.MerchantID(),
		"partner_id", req.PartnerID(),
		"party_size", req.Terms().PartySize)
	return queries.NewBookingRequestView(req), nil
}

func (uc *bookingUseCaseImpl) UpdateBookingRequestStatus(ctx context.Context, merchantID, requestID uuid.UUID, change StatusChange) (*queries.BookingRequestView, error) {
	if change.Action == nil {
		return nil, errs.Mark(errs.New("action is required"), ErrValidation)
	}
	req, err := uc.load(ctx, merchantID, requestID)
	if err != nil {
		return nil, err
	}
	if change.ExpectedVersion != nil && *change.ExpectedVersion != req.Version() {
		return nil, ErrConcurrentUpdate
	}

	now := uc.clock.Now()
	if req.IsExpiredOn(schedule.DateOf(now)) {
		if err := uc.expire(ctx, req, now); err != nil {
			return nil, err
		}
		return nil, ErrRequestExpired
	}
	if !booking.CanTransition(req.Status(), change.Action.TargetStatus()) {
		return nil, errs.Mark(booking.ErrInvalidTransition, ErrInvalidState)
	}

	expected := req.Version()
	var token capacity.Token
	if change.Action.ReservesCapacity() {
		token, err = uc.reserveFor(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	if err := change.Action.Apply(req, change.Actor, token.Holder, now); err != nil {
		uc.release(ctx, token)
		if errors.Is(err, booking.ErrInvalidTransition) {
			return nil, errs.Mark(err, ErrInvalidState)
		}
		return nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BookingRequests().Update(ctx, tx.DB(), req, expected)
	})
	if err != nil {
		uc.release(ctx, token)
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrConcurrentUpdate)
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	uc.logger.InfoContext(ctx, "booking request status changed",
		"request_id", req.ID(),
		"status", req.Status(),
		"actor", change.Actor)
	view := queries.NewBookingRequestView(req)
	uc.publish(ctx, shared.EventBookingStatusChanged, req, view)
	return view, nil
}

// reserveFor holds seats for the request's effective terms.
func (uc *bookingUseCaseImpl) reserveFor(ctx context.Context, req *booking.BookingRequest) (capacity.Token, error) {
	terms := req.EffectiveTerms()
	cfg, err := uc.policies.Config(ctx, req.MerchantID())
	if err != nil {
		return capacity.Token{}, err
	}
	view, err := uc.planner.View(ctx, cfg, terms.Date, terms.Slot)
	if err != nil {
		if errors.Is(err, capacity.ErrSlotNotProvisioned) {
			return capacity.Token{}, errs.Mark(err, ErrCapacityExceeded)
		}
		return capacity.Token{}, errs.Mark(err, ErrCapacityUnavailable)
	}

	holder := uuid.NewString()
	token, err := uc.ledger.Reserve(ctx, view.Snapshot.Key, terms.PartySize, holder)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, capacity.ErrCapacityExceeded), errors.Is(err, capacity.ErrLedgerContention):
		return capacity.Token{}, errs.Mark(err, ErrCapacityExceeded)
	default:
		uc.release(ctx, capacity.Token{Key: view.Snapshot.Key, Holder: holder, Covers: terms.PartySize})
		return capacity.Token{}, errs.Mark(err, ErrCapacityUnavailable)
	}
}

func (uc *bookingUseCaseImpl) ExpireOverdue(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	overdue, err := uc.uow.CommandReads().OpenRequestsBefore(ctx, schedule.DateOf(now), uc.settings.ExpiryBatchSize)
	if err != nil {
		return 0, err
	}

	expired := 0
	var failures []error
	for _, req := range overdue {
		if err := uc.expire(ctx, req, now); err != nil {
			if errors.Is(err, ErrConcurrentUpdate) {
				uc.logger.DebugContext(ctx, "skipping request changed during expiry", "request_id", req.ID())
				continue
			}
			// one bad row must not hold back the rest of the batch
			uc.logger.ErrorContext(ctx, "failed to expire booking request", "request_id", req.ID(), "error", err.Error())
			failures = append(failures, errs.Wrap(err, "expire "+req.ID().String()))
			continue
		}
		expired++
	}
	return expired, errs.Join(failures...)
}

func (uc *bookingUseCaseImpl) expire(ctx context.Context, req *booking.BookingRequest, now time.Time) error {
	expected := req.Version()
	if err := req.Expire(now); err != nil {
		return errs.Mark(err, ErrInvalidState)
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BookingRequests().Update(ctx, tx.DB(), req, expected)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrConcurrentUpdate)
		}
		return err
	}
	uc.logger.InfoContext(ctx, "booking request expired", "request_id", req.ID(), "merchant_id", req.MerchantID())
	uc.publish(ctx, shared.EventBookingStatusChanged, req, queries.NewBookingRequestView(req))
	return nil
}

func (uc *bookingUseCaseImpl) load(ctx context.Context, merchantID, requestID uuid.UUID) (*booking.BookingRequest, error) {
	req, err := uc.uow.CommandReads().BookingRequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingRequestNotFound
		}
		return nil, err
	}
	if req.BelongsTo(merchantID) != nil {
		return nil, ErrBookingRequestNotFound
	}
	return req, nil
}

const sideEffectTimeout = 2 * time.Second

// release returns held seats. It outlives the caller's deadline so a timed-out request still
// frees what it reserved.
func (uc *bookingUseCaseImpl) release(ctx context.Context, token capacity.Token) {
	if token.IsZero() {
		return
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	if err := uc.ledger.Release(rctx, token); err != nil {
		uc.logger.ErrorContext(ctx, "failed to release capacity",
			"key", token.Key.String(),
			"holder", token.Holder,
			"covers", token.Covers,
			"error", err.Error())
	}
}

// publish is best effort; a lost event never fails the operation that produced it.
func (uc *bookingUseCaseImpl) publish(ctx context.Context, eventType string, req *booking.BookingRequest, payload any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	err := uc.events.Publish(pctx, shared.Event{
		Type:       eventType,
		MerchantID: req.MerchantID(),
		SubjectID:  req.ID().String(),
		OccurredAt: uc.clock.Now(),
		Payload:    payload,
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "event publish failed", "type", eventType, "request_id", req.ID(), "error", err.Error())
	}
}
