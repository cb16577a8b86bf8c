//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemQueriesFixture struct {
	items    *queriesmock.MockItemReader
	bookings *queriesmock.MockBookingReader
	comments *queriesmock.MockCommentReader
	clock    *clock.MockClock
	sut      queries.ItemQueries
}

func newItemQueriesFixture(t *testing.T, now time.Time) *itemQueriesFixture {
	ctrl := gomock.NewController(t)
	f := &itemQueriesFixture{
		items:    queriesmock.NewMockItemReader(ctrl),
		bookings: queriesmock.NewMockBookingReader(ctrl),
		comments: queriesmock.NewMockCommentReader(ctrl),
		clock:    clock.NewMockClock(now),
	}
	f.sut = queries.NewItemQueries(f.items, f.bookings, f.comments, f.clock)
	return f
}

func approvedBooking(bookerID uuid.UUID, start, end time.Time) *queries.BookingView {
	return &queries.BookingView{
		ID:     uuid.New(),
		Start:  start,
		End:    end,
		Status: "APPROVED",
		Booker: queries.UserRef{ID: bookerID},
	}
}

func TestItemQueries_GetByID_BookingProjection(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	itemID := uuid.New()

	itemView := func() *queries.ItemView {
		return &queries.ItemView{ID: itemID, Name: "drill", OwnerID: ownerID, Available: true, Comments: []queries.CommentView{}}
	}

	t.Run("owner sees closest next and latest last booking", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)

		older := approvedBooking(uuid.New(), now.Add(-96*time.Hour), now.Add(-72*time.Hour))
		last := approvedBooking(uuid.New(), now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		next := approvedBooking(uuid.New(), now.Add(24*time.Hour), now.Add(48*time.Hour))
		later := approvedBooking(uuid.New(), now.Add(72*time.Hour), now.Add(96*time.Hour))

		f.items.EXPECT().FindByID(ctx, itemID).Return(itemView(), nil)
		f.comments.EXPECT().FindByItem(ctx, itemID).Return([]queries.CommentView{}, nil)
		f.bookings.EXPECT().FindApprovedByItem(ctx, itemID).
			Return([]*queries.BookingView{older, later, last, next}, nil)

		view, err := f.sut.GetByID(ctx, itemID, ownerID)
		require.NoError(t, err)

		require.NotNil(t, view.LastBooking)
		assert.Equal(t, last.ID, view.LastBooking.ID)
		require.NotNil(t, view.NextBooking)
		assert.Equal(t, next.ID, view.NextBooking.ID)
	})

	t.Run("booking in progress lands in neither bucket", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)

		inProgress := approvedBooking(uuid.New(), now.Add(-time.Hour), now.Add(time.Hour))

		f.items.EXPECT().FindByID(ctx, itemID).Return(itemView(), nil)
		f.comments.EXPECT().FindByItem(ctx, itemID).Return([]queries.CommentView{}, nil)
		f.bookings.EXPECT().FindApprovedByItem(ctx, itemID).
			Return([]*queries.BookingView{inProgress}, nil)

		view, err := f.sut.GetByID(ctx, itemID, ownerID)
		require.NoError(t, err)

		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})

	t.Run("non-owner never sees booking annotations", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)

		f.items.EXPECT().FindByID(ctx, itemID).Return(itemView(), nil)
		f.comments.EXPECT().FindByItem(ctx, itemID).Return([]queries.CommentView{}, nil)

		view, err := f.sut.GetByID(ctx, itemID, uuid.New())
		require.NoError(t, err)

		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})
}

func TestItemQueries_Search(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("blank text short-circuits to an empty list", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)

		views, err := f.sut.Search(ctx, "   ", 0, 20)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("non-blank text hits the store", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)

		f.items.EXPECT().Search(ctx, "drill", gomock.Any()).
			Return([]*queries.ItemView{{ID: uuid.New(), Name: "drill"}}, nil)

		views, err := f.sut.Search(ctx, "drill", 0, 20)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}

func TestHasStartedBookingBy(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("started booking by the user qualifies", func(t *testing.T) {
		approved := []*queries.BookingView{approvedBooking(userID, now.Add(-time.Hour), now.Add(time.Hour))}
		assert.True(t, queries.HasStartedBookingBy(approved, userID, now))
	})

	t.Run("future booking does not qualify", func(t *testing.T) {
		approved := []*queries.BookingView{approvedBooking(userID, now.Add(time.Hour), now.Add(2*time.Hour))}
		assert.False(t, queries.HasStartedBookingBy(approved, userID, now))
	})

	t.Run("booking starting exactly now does not qualify", func(t *testing.T) {
		approved := []*queries.BookingView{approvedBooking(userID, now, now.Add(time.Hour))}
		assert.False(t, queries.HasStartedBookingBy(approved, userID, now))
	})

	t.Run("other users' bookings do not qualify", func(t *testing.T) {
		approved := []*queries.BookingView{approvedBooking(uuid.New(), now.Add(-time.Hour), now.Add(time.Hour))}
		assert.False(t, queries.HasStartedBookingBy(approved, userID, now))
	})
}
