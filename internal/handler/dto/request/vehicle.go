package request

import (
	"smartpark/internal/domain/vehicle"
)

type CreateVehicleRequest struct {
	Plate       string `json:"plate" binding:"required"`
	Make        string `json:"make" binding:"required,max=50"`
	Model       string `json:"model" binding:"required,max=50"`
	Color       string `json:"color" binding:"required,max=30"`
	VehicleType string `json:"vehicle_type" binding:"required"`
}

func (r CreateVehicleRequest) ToDomain() (*vehicle.Vehicle, error) {
	plate, err := vehicle.NewPlate(r.Plate)
	if err != nil {
		return nil, err
	}
	vehicleType, err := vehicle.NewType(r.VehicleType)
	if err != nil {
		return nil, err
	}
	return vehicle.NewVehicle(plate, r.Make, r.Model, r.Color, vehicleType)
}

type UpdateVehicleRequest struct {
	Make        string `json:"make" binding:"required,max=50"`
	Model       string `json:"model" binding:"required,max=50"`
	Color       string `json:"color" binding:"required,max=30"`
	VehicleType string `json:"vehicle_type" binding:"required"`
}
