//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemCommandsFixture struct {
	items     *commandsmock.MockItemWriter
	comments  *commandsmock.MockCommentWriter
	itemReads *queriesmock.MockItemReader
	bookings  *queriesmock.MockBookingReader
	users     *queriesmock.MockUserReader
	clock     *clock.MockClock
	sut       commands.ItemCommands
}

func newItemCommandsFixture(t *testing.T, now time.Time) *itemCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &itemCommandsFixture{
		items:     commandsmock.NewMockItemWriter(ctrl),
		comments:  commandsmock.NewMockCommentWriter(ctrl),
		itemReads: queriesmock.NewMockItemReader(ctrl),
		bookings:  queriesmock.NewMockBookingReader(ctrl),
		users:     queriesmock.NewMockUserReader(ctrl),
		clock:     clock.NewMockClock(now),
	}
	f.sut = commands.NewItemCommands(f.items, f.comments, f.itemReads, f.bookings, f.users, f.clock)
	return f
}

func TestItemCommands_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	itemID := uuid.New()

	storedView := func() *queries.ItemView {
		return &queries.ItemView{ID: itemID, Name: "drill", Description: "cordless", Available: true, OwnerID: ownerID}
	}

	t.Run("owner patches selected fields only", func(t *testing.T) {
		f := newItemCommandsFixture(t, now)

		newName := "hammer drill"
		available := false

		f.users.EXPECT().FindByID(ctx, ownerID).Return(&queries.UserView{ID: ownerID}, nil)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(storedView(), nil)
		f.items.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, i *item.Item) error {
				assert.Equal(t, newName, i.Name())
				assert.Equal(t, "cordless", i.Description())
				assert.False(t, i.Available())
				return nil
			},
		)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(storedView(), nil)

		_, err := f.sut.Update(ctx, itemID, commands.UpdateItemInput{Name: &newName, Available: &available}, ownerID)
		require.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newItemCommandsFixture(t, now)

		stranger := uuid.New()
		f.users.EXPECT().FindByID(ctx, stranger).Return(&queries.UserView{ID: stranger}, nil)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(storedView(), nil)

		name := "stolen"
		_, err := f.sut.Update(ctx, itemID, commands.UpdateItemInput{Name: &name}, stranger)
		require.ErrorIs(t, err, shared.ErrNotOwner)
	})
}

func TestItemCommands_AddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
	authorID := uuid.New()
	itemID := uuid.New()

	author := &queries.UserView{ID: authorID, Name: "maxim"}
	itemView := &queries.ItemView{ID: itemID, Name: "drill", OwnerID: uuid.New(), Available: true}

	approvedBy := func(bookerID uuid.UUID, start time.Time) *queries.BookingView {
		return &queries.BookingView{
			ID:     uuid.New(),
			Start:  start,
			End:    start.Add(24 * time.Hour),
			Status: "APPROVED",
			Item:   queries.ItemRef{ID: itemID, Name: "drill"},
			Booker: queries.UserRef{ID: bookerID, Name: "someone"},
		}
	}

	t.Run("eligible author gets a stamped comment back", func(t *testing.T) {
		f := newItemCommandsFixture(t, now)

		f.users.EXPECT().FindByID(ctx, authorID).Return(author, nil)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(itemView, nil)
		f.bookings.EXPECT().FindApprovedByItem(ctx, itemID).Return(
			[]*queries.BookingView{approvedBy(authorID, now.Add(-48*time.Hour))}, nil)
		f.comments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *item.Comment) error {
				assert.Equal(t, itemID, c.ItemID())
				assert.Equal(t, authorID, c.AuthorID())
				assert.Equal(t, "great drill", c.Text())
				return nil
			},
		)

		view, err := f.sut.AddComment(ctx, itemID, authorID, "great drill")
		require.NoError(t, err)
		assert.Equal(t, "maxim", view.AuthorName)
		assert.Equal(t, now.Truncate(time.Second), view.Created)
	})

	t.Run("booking that has not started yet does not qualify", func(t *testing.T) {
		f := newItemCommandsFixture(t, now)

		f.users.EXPECT().FindByID(ctx, authorID).Return(author, nil)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(itemView, nil)
		f.bookings.EXPECT().FindApprovedByItem(ctx, itemID).Return(
			[]*queries.BookingView{approvedBy(authorID, now.Add(time.Hour))}, nil)

		_, err := f.sut.AddComment(ctx, itemID, authorID, "premature")
		require.ErrorIs(t, err, shared.ErrItemNeverBooked)
	})

	t.Run("someone else's booking does not qualify", func(t *testing.T) {
		f := newItemCommandsFixture(t, now)

		f.users.EXPECT().FindByID(ctx, authorID).Return(author, nil)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(itemView, nil)
		f.bookings.EXPECT().FindApprovedByItem(ctx, itemID).Return(
			[]*queries.BookingView{approvedBy(uuid.New(), now.Add(-48*time.Hour))}, nil)

		_, err := f.sut.AddComment(ctx, itemID, authorID, "never had it")
		require.ErrorIs(t, err, shared.ErrItemNeverBooked)
	})

	t.Run("no approved bookings at all", func(t *testing.T) {
		f := newItemCommandsFixture(t, now)

		f.users.EXPECT().FindByID(ctx, authorID).Return(author, nil)
		f.itemReads.EXPECT().FindByID(ctx, itemID).Return(itemView, nil)
		f.bookings.EXPECT().FindApprovedByItem(ctx, itemID).Return([]*queries.BookingView{}, nil)

		_, err := f.sut.AddComment(ctx, itemID, authorID, "never booked")
		require.ErrorIs(t, err, shared.ErrItemNeverBooked)
	})
}
