package booking

import (
	"errors"

	"github.com/google/uuid"
)

var ErrAlreadyApproved = errors.New("booking is already approved")

type Booking struct {
	id       uuid.UUID
	itemID   uuid.UUID
	bookerID uuid.UUID
	period   Period
	status   Status
}

// NewBooking creates a reservation request. The status is always WAITING
// here; any status hint supplied by the caller is ignored.
func NewBooking(itemID, bookerID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, period Period, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   status,
	}
}

// Resolve applies the owner's decision. An APPROVED booking cannot be
// resolved again, for either decision. A REJECTED one can still be approved.
func (b *Booking) Resolve(approved bool) error {
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Period() Period      { return b.period }
func (b *Booking) Status() Status      { return b.status }
