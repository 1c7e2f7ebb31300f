//go:build unit || e2e

package builder

import (
	"time"

	"smartpark/internal/domain/vehicle"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	id          uuid.UUID
	plate       string
	make        string
	model       string
	color       string
	vehicleType string
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		id:          uuid.New(),
		plate:       "ABC1234",
		make:        "Toyota",
		model:       "Corolla",
		color:       "Silver",
		vehicleType: "CAR",
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *VehicleBuilder) WithPlate(plate string) *VehicleBuilder {
	b.plate = plate
	return b
}

func (b *VehicleBuilder) WithMake(make string) *VehicleBuilder {
	b.make = make
	return b
}

func (b *VehicleBuilder) WithModel(model string) *VehicleBuilder {
	b.model = model
	return b
}

func (b *VehicleBuilder) WithColor(color string) *VehicleBuilder {
	b.color = color
	return b
}

func (b *VehicleBuilder) WithType(vehicleType string) *VehicleBuilder {
	b.vehicleType = vehicleType
	return b
}

func (b *VehicleBuilder) BuildDomain() (*vehicle.Vehicle, error) {
	plate, err := vehicle.NewPlate(b.plate)
	if err != nil {
		return nil, err
	}
	vehicleType, err := vehicle.NewType(b.vehicleType)
	if err != nil {
		return nil, err
	}
	return vehicle.NewVehicle(plate, b.make, b.model, b.color, vehicleType)
}

func (b *VehicleBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"plate":        b.plate,
		"make":         b.make,
		"model":        b.model,
		"color":        b.color,
		"vehicle_type": b.vehicleType,
	}
}

func (b *VehicleBuilder) BuildView() *queries.VehicleView {
	now := time.Now().UTC()
	return &queries.VehicleView{
		ID:          b.id,
		Plate:       b.plate,
		Make:        b.make,
		Model:       b.model,
		Color:       b.color,
		VehicleType: b.vehicleType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
