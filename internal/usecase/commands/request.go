package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestInput struct {
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, input CreateRequestInput, userID uuid.UUID) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requests     RequestWriter
	requestReads queries.RequestReader
	users        queries.UserReader
	clock        clock.Clock
}

func NewRequestCommands(
	requests RequestWriter,
	requestReads queries.RequestReader,
	users queries.UserReader,
	clk clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		requests:     requests,
		requestReads: requestReads,
		users:        users,
		clock:        clk,
	}
}

func (c *requestCommandsImpl) Create(ctx context.Context, input CreateRequestInput, userID uuid.UUID) (*queries.RequestView, error) {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrUserNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	entity, err := request.NewRequest(userID, input.Description, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.requests.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("item request created", "request_id", entity.ID(), "requester_id", userID)

	view, err := c.requestReads.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return view, nil
}
