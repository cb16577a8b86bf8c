package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, input CreateUserInput) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	users     UserWriter
	userReads queries.UserReader
}

func NewUserCommands(users UserWriter, userReads queries.UserReader) UserCommands {
	return &userCommandsImpl{users: users, userReads: userReads}
}

func (c *userCommandsImpl) Create(ctx context.Context, input CreateUserInput) (*queries.UserView, error) {
	if err := c.requireEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	entity, err := user.NewUser(input.Name, input.Email)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.users.Create(ctx, entity); err != nil {
		// The unique index is the authority; the pre-check only narrows the race.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, shared.ErrEmailTaken)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("user created", "user_id", entity.ID())

	return c.readBack(ctx, entity.ID())
}

func (c *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*queries.UserView, error) {
	view, err := c.userReads.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrUserNotFound)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}

	if input.Email != nil && *input.Email != view.Email {
		if err := c.requireEmailFree(ctx, *input.Email); err != nil {
			return nil, err
		}
	}

	entity := user.ReconstructUser(view.ID, view.Name, view.Email)
	if err := entity.Patch(input.Name, input.Email); err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.users.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, shared.ErrEmailTaken)
		}
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("user updated", "user_id", userID)

	return c.readBack(ctx, userID)
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.users.Delete(ctx, userID); err != nil {
		return errs.Mark(err, shared.ErrStorageFailure)
	}
	slog.Info("user deleted", "user_id", userID)
	return nil
}

func (c *userCommandsImpl) requireEmailFree(ctx context.Context, email string) error {
	_, err := c.userReads.FindByEmail(ctx, email)
	if err == nil {
		return errs.Mark(errs.Newf("email %s already in use", email), shared.ErrEmailTaken)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return errs.Mark(err, shared.ErrStorageFailure)
}

func (c *userCommandsImpl) readBack(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	view, err := c.userReads.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrStorageFailure)
	}
	return view, nil
}
