package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error)
	// Resolve applies the owner's approval decision to a waiting booking.
	Resolve(ctx context.Context, bookingID, ownerID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings     BookingWriter
	bookingReads queries.BookingReader
	users        queries.UserReader
	items        queries.ItemReader
}

func NewBookingCommands(
	bookings BookingWriter,
	bookingReads queries.BookingReader,
	users queries.UserReader,
	items queries.ItemReader,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		bookingReads: bookingReads,
		users:        users,
		items:        items,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error) {
	period, err := booking.NewPeriod(input.Start, input.End)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrUserNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	itemView, err := c.resolveItemForBooking(ctx, input.ItemID, userID)
	if err != nil {
		return nil, err
	}

	b := booking.NewBooking(itemView.ID, userID, period)
	if err := c.bookings.Create(ctx, b); err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("booking created", "booking_id", b.ID(), "item_id", itemView.ID, "booker_id", userID)

	return c.readBack(ctx, b.ID())
}

func (c *bookingCommandsImpl) Resolve(ctx context.Context, bookingID, ownerID uuid.UUID, approved bool) (*queries.BookingView, error) {
	snap, err := c.bookings.FindOwnedSnapshot(ctx, bookingID, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	// Unreachable when the join behaves, but the store is an external
	// collaborator; keep a second line of defense.
	if snap.ItemOwnerID != ownerID {
		return nil, errs.Mark(errs.Newf("user %s does not own item %s", ownerID, snap.ItemID), shared.ErrNotOwner)
	}

	period, err := booking.NewPeriod(snap.Start, snap.End)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	entity := booking.ReconstructBooking(snap.ID, snap.ItemID, snap.BookerID, period, snap.Status)

	if err := entity.Resolve(approved); err != nil {
		return nil, errs.Wrap(err, bookingID.String())
	}

	if err := c.bookings.UpdateStatus(ctx, bookingID, entity.Status()); err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("booking resolved", "booking_id", bookingID, "status", entity.Status())

	return c.readBack(ctx, bookingID)
}

// resolveItemForBooking validates the target item. An owner booking their
// own item is told the item does not exist rather than that it is theirs.
func (c *bookingCommandsImpl) resolveItemForBooking(ctx context.Context, itemID, requesterID uuid.UUID) (*queries.ItemView, error) {
	itemView, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrItemNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	if itemView.OwnerID == requesterID {
		return nil, errs.Mark(errs.Newf("item %s not bookable by its owner", itemID), shared.ErrItemNotFound)
	}
	if !itemView.Available {
		return nil, errs.Mark(errs.Newf("item %s is not available", itemID), shared.ErrItemNotAvailable)
	}
	return itemView, nil
}

func (c *bookingCommandsImpl) readBack(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return view, nil
}
