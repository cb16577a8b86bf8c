package components

import (
	"shareit/internal/infra/repository"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each repository implements both the read and write port of its aggregate;
// fx.As splits the one constructor across the two interfaces.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(queries.UserReader)),
			fx.As(new(commands.UserWriter)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(queries.ItemReader)),
			fx.As(new(commands.ItemWriter)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(queries.BookingReader)),
			fx.As(new(commands.BookingWriter)),
		),
		fx.Annotate(
			repository.NewCommentRepository,
			fx.As(new(queries.CommentReader)),
			fx.As(new(commands.CommentWriter)),
		),
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(queries.RequestReader)),
			fx.As(new(commands.RequestWriter)),
		),
	),
)
