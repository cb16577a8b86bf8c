package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingQueries is the temporal query resolver: it maps a symbolic state
// category plus the caller's role onto a concrete store query, evaluated
// against a single "now" snapshot per call.
type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*BookingView, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
	users    UserReader
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReader, users UserReader, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	// The participant join folds "forbidden" into "not found": callers
	// outside both roles cannot learn that the booking exists.
	view, err := q.bookings.FindByIDForParticipant(ctx, bookingID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*BookingView, error) {
	return q.list(ctx, userID, state, from, size, q.bookings.FindByBooker)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*BookingView, error) {
	return q.list(ctx, userID, state, from, size, q.bookings.FindByOwner)
}

func (q *bookingQueriesImpl) list(
	ctx context.Context,
	userID uuid.UUID,
	state string,
	from, size int,
	find func(context.Context, uuid.UUID, booking.StateFilter, time.Time, shared.Page) ([]*BookingView, error),
) ([]*BookingView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	page, err := shared.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	filter := booking.ParseStateFilter(state)
	if !filter.Known() {
		return nil, errs.Mark(errs.Newf("Unknown state: %s", filter.Literal()), shared.ErrUnknownState)
	}

	// One snapshot serves both sides of the CURRENT predicate; reading the
	// clock twice could let a booking fall through at the boundary.
	now := q.clock.Now()

	views, err := find(ctx, userID, filter, now, page)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return views, nil
}

func requireUser(ctx context.Context, users UserReader, userID uuid.UUID) error {
	if _, err := users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, shared.ErrUserNotFound)
		}
		return errs.Mark(err, shared.ErrStorageFailure)
	}
	return nil
}
