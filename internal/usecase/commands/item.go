package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name        string
	Description string
	RequestID   *uuid.UUID
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, input CreateItemInput, ownerID uuid.UUID) (*queries.ItemView, error)
	Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput, userID uuid.UUID) (*queries.ItemView, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	AddComment(ctx context.Context, itemID, userID uuid.UUID, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	items     ItemWriter
	comments  CommentWriter
	itemReads queries.ItemReader
	bookings  queries.BookingReader
	users     queries.UserReader
	clock     clock.Clock
}

func NewItemCommands(
	items ItemWriter,
	comments CommentWriter,
	itemReads queries.ItemReader,
	bookings queries.BookingReader,
	users queries.UserReader,
	clk clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		items:     items,
		comments:  comments,
		itemReads: itemReads,
		bookings:  bookings,
		users:     users,
		clock:     clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, input CreateItemInput, ownerID uuid.UUID) (*queries.ItemView, error) {
	if err := c.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	entity, err := item.NewItem(ownerID, input.Name, input.Description, input.RequestID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.items.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("item created", "item_id", entity.ID(), "owner_id", ownerID)

	return c.readBack(ctx, entity.ID())
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput, userID uuid.UUID) (*queries.ItemView, error) {
	if err := c.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	view, err := c.itemReads.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrItemNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	entity := item.ReconstructItem(view.ID, view.OwnerID, view.Name, view.Description, view.Available, view.RequestID)
	if !entity.IsOwnedBy(userID) {
		return nil, errs.Mark(errs.Newf("user %s does not own item %s", userID, itemID), shared.ErrNotOwner)
	}
	entity.Patch(input.Name, input.Description, input.Available)

	if err := c.items.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("item updated", "item_id", itemID)

	return c.readBack(ctx, itemID)
}

func (c *itemCommandsImpl) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := c.items.Delete(ctx, itemID); err != nil {
		return errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("item deleted", "item_id", itemID)
	return nil
}

// AddComment gates feedback on booking history: the author must have an
// approved booking on the item that has already begun. An approved booking
// that starts in the future does not qualify.
func (c *itemCommandsImpl) AddComment(ctx context.Context, itemID, userID uuid.UUID, text string) (*queries.CommentView, error) {
	author, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrUserNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	if _, err := c.itemReads.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrItemNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	approved, err := c.bookings.FindApprovedByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	now := c.clock.Now()
	if !queries.HasStartedBookingBy(approved, userID, now) {
		return nil, errs.Mark(errs.Newf("item %s was never booked by user %s", itemID, userID), shared.ErrItemNeverBooked)
	}

	comment, err := item.NewComment(itemID, userID, text, now)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.comments.Create(ctx, comment); err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("comment created", "comment_id", comment.ID(), "item_id", itemID, "author_id", userID)

	return &queries.CommentView{
		ID:         comment.ID(),
		Text:       comment.Text(),
		AuthorName: author.Name,
		Created:    comment.Created(),
	}, nil
}

func (c *itemCommandsImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, shared.ErrUserNotFound)
		}
		return errs.Mark(err, shared.ErrStorageFailure)
	}
	return nil
}

func (c *itemCommandsImpl) readBack(ctx context.Context, itemID uuid.UUID) (*queries.ItemView, error) {
	view, err := c.itemReads.FindByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return view, nil
}
