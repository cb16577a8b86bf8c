//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userCommandsFixture struct {
	users     *commandsmock.MockUserWriter
	userReads *queriesmock.MockUserReader
	sut       commands.UserCommands
}

func newUserCommandsFixture(t *testing.T) *userCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &userCommandsFixture{
		users:     commandsmock.NewMockUserWriter(ctrl),
		userReads: queriesmock.NewMockUserReader(ctrl),
	}
	f.sut = commands.NewUserCommands(f.users, f.userReads)
	return f
}

func dupKeyErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()
	input := commands.CreateUserInput{Name: "maxim", Email: "maxim@example.com"}

	t.Run("creates the user and returns the stored view", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.userReads.EXPECT().FindByEmail(ctx, input.Email).Return(nil, notFoundErr("user not found"))

		var createdID uuid.UUID
		f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *user.User) error {
				createdID = u.ID()
				assert.Equal(t, "maxim", u.Name())
				assert.Equal(t, "maxim@example.com", u.Email())
				return nil
			},
		)
		f.userReads.EXPECT().FindByID(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
				assert.Equal(t, createdID, id)
				return &queries.UserView{ID: id, Name: "maxim", Email: "maxim@example.com"}, nil
			},
		)

		view, err := f.sut.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "maxim@example.com", view.Email)
	})

	t.Run("email already in use fails before the insert", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.userReads.EXPECT().FindByEmail(ctx, input.Email).
			Return(&queries.UserView{ID: uuid.New(), Email: input.Email}, nil)

		_, err := f.sut.Create(ctx, input)
		require.ErrorIs(t, err, shared.ErrEmailTaken)
	})

	t.Run("duplicate key on insert still maps to email taken", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.userReads.EXPECT().FindByEmail(ctx, input.Email).Return(nil, notFoundErr("user not found"))
		f.users.EXPECT().Create(ctx, gomock.Any()).Return(dupKeyErr("duplicate email"))

		_, err := f.sut.Create(ctx, input)
		require.ErrorIs(t, err, shared.ErrEmailTaken)
	})

	t.Run("malformed email is a validation error", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		bad := commands.CreateUserInput{Name: "maxim", Email: "not-an-email"}
		f.userReads.EXPECT().FindByEmail(ctx, bad.Email).Return(nil, notFoundErr("user not found"))

		_, err := f.sut.Create(ctx, bad)
		require.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestUserCommands_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	storedView := func() *queries.UserView {
		return &queries.UserView{ID: userID, Name: "maxim", Email: "maxim@example.com"}
	}

	t.Run("patches the name without re-checking the unchanged email", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		newName := "max"
		f.userReads.EXPECT().FindByID(ctx, userID).Return(storedView(), nil)
		f.users.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *user.User) error {
				assert.Equal(t, "max", u.Name())
				assert.Equal(t, "maxim@example.com", u.Email())
				return nil
			},
		)
		f.userReads.EXPECT().FindByID(ctx, userID).Return(storedView(), nil)

		_, err := f.sut.Update(ctx, userID, commands.UpdateUserInput{Name: &newName})
		require.NoError(t, err)
	})

	t.Run("changing to a taken email is rejected", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		taken := "other@example.com"
		f.userReads.EXPECT().FindByID(ctx, userID).Return(storedView(), nil)
		f.userReads.EXPECT().FindByEmail(ctx, taken).
			Return(&queries.UserView{ID: uuid.New(), Email: taken}, nil)

		_, err := f.sut.Update(ctx, userID, commands.UpdateUserInput{Email: &taken})
		require.ErrorIs(t, err, shared.ErrEmailTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.userReads.EXPECT().FindByID(ctx, userID).Return(nil, notFoundErr("user not found"))

		_, err := f.sut.Update(ctx, userID, commands.UpdateUserInput{})
		require.ErrorIs(t, err, shared.ErrUserNotFound)
	})
}
