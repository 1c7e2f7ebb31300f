package components

import (
	"smartpark/internal/domain/parking"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/pkg/config"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTariff,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
		queries.NewSlotQueries,
		queries.NewVehicleQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewParkingCommands,
		commands.NewSlotCommands,
		commands.NewVehicleCommands,
		commands.NewUserCommands,
		commands.NewAuthCommands,
	),
)

func NewTariff(cfg config.Config) parking.Tariff {
	return parking.Tariff{
		GraceMinutes:        cfg.Tariff.GraceMinutes,
		FirstHourCents:      cfg.Tariff.FirstHourCents,
		AdditionalHourCents: cfg.Tariff.AdditionalHourCents,
		DailyCents:          cfg.Tariff.DailyCents,
		DailyAfterHours:     cfg.Tariff.DailyAfterHours,
	}
}
