package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// Request is a want-ad: a user describes an item they are looking for, and
// other users may list items referencing the request.
type Request struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	created     time.Time
}

func NewRequest(requesterID uuid.UUID, description string, now time.Time) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	return &Request{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		created:     now,
	}, nil
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Description() string    { return r.description }
func (r *Request) Created() time.Time     { return r.created }
