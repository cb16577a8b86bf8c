package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

// BookingShort is the projection attached to item views: just enough to
// link the booking without exposing the full record.
type BookingShort struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	RequestID   *uuid.UUID    `json:"request_id,omitempty"`
	LastBooking *BookingShort `json:"last_booking,omitempty"`
	NextBooking *BookingShort `json:"next_booking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type RequestView struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	RequesterID uuid.UUID `json:"requester_id"`
	Created     time.Time `json:"created"`
	Items       []ItemRef `json:"items"`
}

// Read-side store ports, implemented by internal/infra/repository. Failures
// surface as infra.RepositoryError values; the usecases translate the
// NOT_FOUND kind into the shared sentinels.

type BookingReader interface {
	// FindByID is the unauthorized system lookup, used for read-after-write.
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindByIDForParticipant resolves the booking only when userID is the
	// booker or the item's owner; anyone else gets NOT_FOUND from the join.
	FindByIDForParticipant(ctx context.Context, id, userID uuid.UUID) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID, state booking.StateFilter, now time.Time, page shared.Page) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, state booking.StateFilter, now time.Time, page shared.Page) ([]*BookingView, error)
	FindApprovedByItem(ctx context.Context, itemID uuid.UUID) ([]*BookingView, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type ItemReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page shared.Page) ([]*ItemView, error)
}

type CommentReader interface {
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
}

type RequestReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindAllForeign(ctx context.Context, requesterID uuid.UUID, page shared.Page) ([]*RequestView, error)
}
