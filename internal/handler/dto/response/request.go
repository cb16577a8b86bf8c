package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	RequesterID uuid.UUID `json:"requester_id"`
	Created     time.Time `json:"created"`
	Items       []ItemRef `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	items := make([]ItemRef, len(v.Items))
	for i, ref := range v.Items {
		items[i] = ItemRef{ID: ref.ID, Name: ref.Name}
	}
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		RequesterID: v.RequesterID,
		Created:     v.Created,
		Items:       items,
	}
}

func FromRequestViews(vs []*queries.RequestView) []*ItemRequestResponse {
	out := make([]*ItemRequestResponse, len(vs))
	for i, v := range vs {
		out[i] = FromRequestView(v)
	}
	return out
}
