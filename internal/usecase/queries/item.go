package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemQueries interface {
	// GetByID returns the item with comments, and with last/next booking
	// annotations when (and only when) the viewer owns the item.
	GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error)
	Search(ctx context.Context, text string, from, size int) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReader
	bookings BookingReader
	comments CommentReader
	clock    clock.Clock
}

func NewItemQueries(items ItemReader, bookings BookingReader, comments CommentReader, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, bookings: bookings, comments: comments, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrItemNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	if err := q.fillComments(ctx, view); err != nil {
		return nil, err
	}
	if err := q.fillBookings(ctx, view, viewerID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error) {
	page, err := shared.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	for _, view := range views {
		if err := q.fillComments(ctx, view); err != nil {
			return nil, err
		}
		if err := q.fillBookings(ctx, view, ownerID); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, from, size int) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	page, err := shared.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.items.Search(ctx, text, page)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return views, nil
}

// fillBookings derives the projection from the current approved set on
// every read; nothing is cached. The next booking is the earliest start in
// the future, the last booking the latest end in the past. A booking in
// progress right now lands in neither bucket.
func (q *itemQueriesImpl) fillBookings(ctx context.Context, view *ItemView, viewerID uuid.UUID) error {
	if view.OwnerID != viewerID {
		return nil
	}

	approved, err := q.bookings.FindApprovedByItem(ctx, view.ID)
	if err != nil {
		return errs.Mark(err, shared.ErrStorageFailure)
	}

	now := q.clock.Now()
	var next, last *BookingView
	for _, b := range approved {
		if b.Start.After(now) && (next == nil || b.Start.Before(next.Start)) {
			next = b
		}
		if b.End.Before(now) && (last == nil || b.End.After(last.End)) {
			last = b
		}
	}

	if next != nil {
		view.NextBooking = &BookingShort{ID: next.ID, BookerID: next.Booker.ID}
	}
	if last != nil {
		view.LastBooking = &BookingShort{ID: last.ID, BookerID: last.Booker.ID}
	}
	return nil
}

func (q *itemQueriesImpl) fillComments(ctx context.Context, view *ItemView) error {
	comments, err := q.comments.FindByItem(ctx, view.ID)
	if err != nil {
		return errs.Mark(err, shared.ErrStorageFailure)
	}
	view.Comments = comments
	return nil
}

// HasStartedBookingBy reports whether the user has an approved booking on
// the item that has already begun; comment creation requires it.
func HasStartedBookingBy(approved []*BookingView, userID uuid.UUID, now time.Time) bool {
	for _, b := range approved {
		if b.Booker.ID == userID && b.Start.Before(now) {
			return true
		}
	}
	return false
}
