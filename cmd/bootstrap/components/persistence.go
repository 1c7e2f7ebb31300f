package components

import (
	"smartpark/internal/infra/readstore"
	"smartpark/internal/infra/uow"

	"go.uber.org/fx"
)

// Write-side repositories are built inside the unit of work per transaction,
// so only the UoW and the read stores enter the graph.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		readstore.NewSessionReadStore,
		readstore.NewSlotReadStore,
		readstore.NewVehicleReadStore,
		readstore.NewUserReadStore,
	),
)
