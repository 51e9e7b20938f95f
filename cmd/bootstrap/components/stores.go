package components

import (
	"stayhub/internal/infra/stores"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoresModule = fx.Module("stores",
	fx.Provide(
		fx.Annotate(
			stores.NewHotelStore,
			fx.As(new(queries.HotelReader)),
			fx.As(new(usecase.HotelFinder)),
		),
		fx.Annotate(
			stores.NewReviewStore,
			fx.As(new(queries.ReviewReader)),
			fx.As(new(commands.ReviewWriter)),
		),
		fx.Annotate(
			stores.NewBookingStore,
			fx.As(new(queries.BookingReader)),
			fx.As(new(commands.BookingWriter)),
		),
		fx.Annotate(
			stores.NewUserStore,
			fx.As(new(queries.UserReader)),
			fx.As(new(commands.UserWriter)),
		),
	),
)
