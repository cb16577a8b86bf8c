package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyComment = errors.New("comment text cannot be empty")

type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

// NewComment stamps the creation time server-side, truncated to whole
// seconds to keep it stable across the database round trip.
func NewComment(itemID, authorID uuid.UUID, text string, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now.Truncate(time.Second),
	}, nil
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) Created() time.Time  { return c.created }
