package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	RequestID   *uuid.UUID        `json:"request_id,omitempty"`
	LastBooking *BookingShortRef  `json:"last_booking,omitempty"`
	NextBooking *BookingShortRef  `json:"next_booking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type BookingShortRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		OwnerID:     v.OwnerID,
		RequestID:   v.RequestID,
		Comments:    FromCommentViews(v.Comments),
	}
	if v.LastBooking != nil {
		resp.LastBooking = &BookingShortRef{ID: v.LastBooking.ID, BookerID: v.LastBooking.BookerID}
	}
	if v.NextBooking != nil {
		resp.NextBooking = &BookingShortRef{ID: v.NextBooking.ID, BookerID: v.NextBooking.BookerID}
	}
	return resp
}

func FromItemViews(vs []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(vs))
	for i, v := range vs {
		out[i] = FromItemView(v)
	}
	return out
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

func FromCommentViews(vs []queries.CommentView) []CommentResponse {
	out := make([]CommentResponse, len(vs))
	for i, v := range vs {
		out[i] = CommentResponse{
			ID:         v.ID,
			Text:       v.Text,
			AuthorName: v.AuthorName,
			Created:    v.Created,
		}
	}
	return out
}
