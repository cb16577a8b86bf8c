package request

import (
	"shareit/internal/usecase/commands"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

func (r CreateItemRequestRequest) ToInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{
		Description: r.Description,
	}
}
