//go:build unit

// Package uowtest is an in-memory unit of work for use case tests. Writes are applied as they
// happen; a failing transaction does not roll back earlier writes.
package uowtest

import (
	"context"
	"slices"
	"sync"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

type recordKey struct {
	merchantID uuid.UUID
	date       schedule.Date
	slot       schedule.Slot
}

type Store struct {
	mu        sync.Mutex
	requests  map[uuid.UUID]booking.State
	decisions []*decision.Decision
	configs   map[uuid.UUID]policy.State
	records   map[recordKey]*performance.Record

	// FailWrites, when set, is returned by every repository write.
	FailWrites error
	// updateFailures fails updates of single requests.
	updateFailures map[uuid.UUID]error
}

func NewStore() *Store {
	return &Store{
		requests:       map[uuid.UUID]booking.State{},
		configs:        map[uuid.UUID]policy.State{},
		records:        map[recordKey]*performance.Record{},
		updateFailures: map[uuid.UUID]error{},
	}
}

// FailUpdatesOf makes every update of the request fail with err.
func (s *Store) FailUpdatesOf(id uuid.UUID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateFailures[id] = err
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memTx{s})
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads { return reads{s} }

// Seed helpers

func (s *Store) PutRequest(r *booking.BookingRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID()] = r.State()
}

func (s *Store) PutConfig(c *policy.BookingConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[c.MerchantID()] = c.State()
}

func (s *Store) PutRecord(r *performance.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recordKey{r.MerchantID(), r.Date(), r.Slot()}] = r
}

// Inspection helpers

func (s *Store) Request(id uuid.UUID) (*booking.BookingRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.requests[id]
	if !ok {
		return nil, false
	}
	return booking.ReconstructBookingRequest(st), true
}

func (s *Store) Decisions(requestID uuid.UUID) []*decision.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*decision.Decision
	for _, d := range s.decisions {
		if d.RequestID() == requestID {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) Config(merchantID uuid.UUID) (*policy.BookingConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.configs[merchantID]
	if !ok {
		return nil, false
	}
	return policy.ReconstructBookingConfig(st), true
}

func (s *Store) Record(merchantID uuid.UUID, date schedule.Date, slot schedule.Slot) (*performance.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[recordKey{merchantID, date, slot}]
	return r, ok
}

type memTx struct{ s *Store }

func (t memTx) BookingRequests() shared.BookingRequestRepository { return requestRepo(t) }
func (t memTx) Decisions() shared.DecisionRepository             { return decisionRepo(t) }
func (t memTx) Configs() shared.ConfigRepository                 { return configRepo(t) }
func (t memTx) Performance() shared.PerformanceRepository        { return performanceRepo(t) }
func (t memTx) Reads() shared.CommandReads                       { return reads(t) }
func (t memTx) DB() dbq.DBTX                                     { return nil }

type requestRepo struct{ s *Store }

func (r requestRepo) Create(_ context.Context, _ dbq.DBTX, req *booking.BookingRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return infra.WrapRepoErr("failed to create booking request", r.s.FailWrites)
	}
	if _, exists := r.s.requests[req.ID()]; exists {
		return infra.WrapRepoErr("booking request exists", nil, infra.KindDuplicateKey)
	}
	r.s.requests[req.ID()] = req.State()
	return nil
}

func (r requestRepo) Update(_ context.Context, _ dbq.DBTX, req *booking.BookingRequest, expectedVersion int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return infra.WrapRepoErr("failed to update booking request", r.s.FailWrites)
	}
	if err := r.s.updateFailures[req.ID()]; err != nil {
		return infra.WrapRepoErr("failed to update booking request", err)
	}
	stored, ok := r.s.requests[req.ID()]
	if !ok || stored.Version != expectedVersion {
		return infra.WrapRepoErr("booking request was modified concurrently", nil, infra.KindConflict)
	}
	r.s.requests[req.ID()] = req.State()
	return nil
}

type decisionRepo struct{ s *Store }

func (r decisionRepo) Create(_ context.Context, _ dbq.DBTX, d *decision.Decision) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return infra.WrapRepoErr("failed to create decision", r.s.FailWrites)
	}
	r.s.decisions = append(r.s.decisions, d)
	return nil
}

type configRepo struct{ s *Store }

func (r configRepo) Upsert(_ context.Context, _ dbq.DBTX, c *policy.BookingConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return infra.WrapRepoErr("failed to upsert booking config", r.s.FailWrites)
	}
	r.s.configs[c.MerchantID()] = c.State()
	return nil
}

type performanceRepo struct{ s *Store }

func (r performanceRepo) Upsert(_ context.Context, _ dbq.DBTX, rec *performance.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return infra.WrapRepoErr("failed to upsert performance record", r.s.FailWrites)
	}
	r.s.records[recordKey{rec.MerchantID(), rec.Date(), rec.Slot()}] = rec
	return nil
}

type reads struct{ s *Store }

func (r reads) BookingRequestByID(_ context.Context, id uuid.UUID) (*booking.BookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return booking.ReconstructBookingRequest(st), nil
}

func (r reads) ConfigByMerchant(_ context.Context, merchantID uuid.UUID) (*policy.BookingConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.configs[merchantID]
	if !ok {
		return nil, infra.WrapRepoErr("booking config not found", nil, infra.KindNotFound)
	}
	return policy.ReconstructBookingConfig(st), nil
}

func (r reads) PerformanceInRange(_ context.Context, merchantID uuid.UUID, from, to schedule.Date) ([]*performance.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*performance.Record
	for k, rec := range r.s.records {
		if k.merchantID != merchantID || k.date.Before(from) || k.date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r reads) OpenRequestsBefore(_ context.Context, date schedule.Date, limit int) ([]*booking.BookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*booking.BookingRequest
	for _, st := range r.s.requests {
		req := booking.ReconstructBookingRequest(st)
		if req.IsExpiredOn(date) {
			out = append(out, req)
		}
	}
	slices.SortFunc(out, func(a, b *booking.BookingRequest) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
