package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side store ports, implemented by internal/infra/repository.

// BookingSnapshot is the flat row the write side works on when resolving a
// status change; it carries the item owner so the defensive ownership
// re-check does not need a second query.
type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Start       time.Time
	End         time.Time
	Status      booking.Status
}

type BookingWriter interface {
	Create(ctx context.Context, b *booking.Booking) error
	// FindOwnedSnapshot resolves the booking only when ownerID owns the
	// booked item; the join doubles as the authorization check.
	FindOwnedSnapshot(ctx context.Context, bookingID, ownerID uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error
}

type ItemWriter interface {
	Create(ctx context.Context, i *item.Item) error
	Update(ctx context.Context, i *item.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentWriter interface {
	Create(ctx context.Context, c *item.Comment) error
}

type UserWriter interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RequestWriter interface {
	Create(ctx context.Context, r *request.Request) error
}
