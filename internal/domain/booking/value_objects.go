package booking

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("booking start date must be strictly before end date")

// Period is the half-open reservation interval. Equal start and end is
// rejected, as is a missing start.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrInvalidPeriod
	}
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}
