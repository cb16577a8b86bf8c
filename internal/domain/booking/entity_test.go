//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "start before end",
			start: base,
			end:   base.Add(24 * time.Hour),
		},
		{
			name:  "start equals end",
			start: base,
			end:   base,
			errIs: booking.ErrInvalidPeriod,
		},
		{
			name:  "start after end",
			start: base.Add(time.Hour),
			end:   base,
			errIs: booking.ErrInvalidPeriod,
		},
		{
			name:  "zero start",
			start: time.Time{},
			end:   base,
			errIs: booking.ErrInvalidPeriod,
		},
		{
			name:  "zero end",
			start: base,
			end:   time.Time{},
			errIs: booking.ErrInvalidPeriod,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			period, err := booking.NewPeriod(c.start, c.end)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.start, period.Start())
				assert.Equal(t, c.end, period.End())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range []booking.Status{
		booking.StatusWaiting,
		booking.StatusApproved,
		booking.StatusRejected,
	} {
		assert.True(t, status.IsValid(), status.String())
	}

	assert.False(t, booking.Status("BOGUS").IsValid())
	assert.False(t, booking.Status("").IsValid())
	assert.False(t, booking.Status("approved").IsValid())
}

func TestNewBookingForcesWaiting(t *testing.T) {
	period, err := booking.NewPeriod(
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	b := booking.NewBooking(uuid.New(), uuid.New(), period)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusWaiting, b.Status())
}

func TestResolve(t *testing.T) {
	period, err := booking.NewPeriod(
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	newBooking := func(status booking.Status) *booking.Booking {
		return booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), period, status)
	}

	t.Run("waiting can be approved", func(t *testing.T) {
		b := newBooking(booking.StatusWaiting)
		require.NoError(t, b.Resolve(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("waiting can be rejected", func(t *testing.T) {
		b := newBooking(booking.StatusWaiting)
		require.NoError(t, b.Resolve(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("approved cannot be approved again", func(t *testing.T) {
		b := newBooking(booking.StatusApproved)
		require.ErrorIs(t, b.Resolve(true), booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("approved cannot be rejected either", func(t *testing.T) {
		b := newBooking(booking.StatusApproved)
		require.ErrorIs(t, b.Resolve(false), booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejected can still be approved", func(t *testing.T) {
		b := newBooking(booking.StatusRejected)
		require.NoError(t, b.Resolve(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})
}

func TestParseStateFilter(t *testing.T) {
	cases := []struct {
		raw   string
		kind  booking.StateKind
		known bool
	}{
		{raw: "ALL", kind: booking.StateAll, known: true},
		{raw: "all", kind: booking.StateAll, known: true},
		{raw: "Waiting", kind: booking.StateWaiting, known: true},
		{raw: "REJECTED", kind: booking.StateRejected, known: true},
		{raw: "current", kind: booking.StateCurrent, known: true},
		{raw: "PAST", kind: booking.StatePast, known: true},
		{raw: "future", kind: booking.StateFuture, known: true},
		{raw: "BOGUS", kind: booking.StateUnknown, known: false},
		{raw: "", kind: booking.StateUnknown, known: false},
	}

	for _, c := range cases {
		t.Run("parse "+c.raw, func(t *testing.T) {
			filter := booking.ParseStateFilter(c.raw)

			assert.Equal(t, c.kind, filter.Kind())
			assert.Equal(t, c.known, filter.Known())
			// The literal survives verbatim for error reporting.
			assert.Equal(t, c.raw, filter.Literal())
		})
	}
}
