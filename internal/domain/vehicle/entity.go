package vehicle

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlate   = errors.New("invalid plate format")
	ErrEmptyMake      = errors.New("vehicle make cannot be empty")
	ErrEmptyModel     = errors.New("vehicle model cannot be empty")
	ErrEmptyColor     = errors.New("vehicle color cannot be empty")
	ErrMakeTooLong    = errors.New("vehicle make is too long (max 50 characters)")
	ErrModelTooLong   = errors.New("vehicle model is too long (max 50 characters)")
	ErrColorTooLong   = errors.New("vehicle color is too long (max 30 characters)")
	ErrInvalidType    = errors.New("invalid vehicle type")
)

const (
	MaxMakeLength  = 50
	MaxModelLength = 50
	MaxColorLength = 30
)

// 7 characters, either the legacy (ABC1234) or Mercosul (ABC1B23) layout.
var plateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)

type Plate struct {
	value string
}

func NewPlate(s string) (Plate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !plateRegex.MatchString(s) {
		return Plate{}, ErrInvalidPlate
	}
	return Plate{value: s}, nil
}

func (p Plate) Value() string {
	return p.value
}

type Type string

const (
	TypeCar        Type = "CAR"
	TypeMotorcycle Type = "MOTORCYCLE"
	TypeTruck      Type = "TRUCK"
	TypeVan        Type = "VAN"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeCar, TypeMotorcycle, TypeTruck, TypeVan:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type Vehicle struct {
	id          uuid.UUID
	plate       Plate
	make        string
	model       string
	color       string
	vehicleType Type
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVehicle(plate Plate, make, model, color string, vehicleType Type) (*Vehicle, error) {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)
	color = strings.TrimSpace(color)

	if err := validateAttributes(make, model, color, vehicleType); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:          uuid.New(),
		plate:       plate,
		make:        make,
		model:       model,
		color:       color,
		vehicleType: vehicleType,
	}, nil
}

func ReconstructVehicle(id uuid.UUID, plate Plate, make, model, color string, vehicleType Type, createdAt, updatedAt time.Time) *Vehicle {
	return &Vehicle{
		id:          id,
		plate:       plate,
		make:        make,
		model:       model,
		color:       color,
		vehicleType: vehicleType,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpdateAttributes changes the descriptive fields. The plate is the vehicle's
// identity and never changes.
func (v *Vehicle) UpdateAttributes(make, model, color string, vehicleType Type) error {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)
	color = strings.TrimSpace(color)

	if err := validateAttributes(make, model, color, vehicleType); err != nil {
		return err
	}

	v.make = make
	v.model = model
	v.color = color
	v.vehicleType = vehicleType
	return nil
}

func validateAttributes(make, model, color string, vehicleType Type) error {
	switch {
	case make == "":
		return ErrEmptyMake
	case len(make) > MaxMakeLength:
		return ErrMakeTooLong
	case model == "":
		return ErrEmptyModel
	case len(model) > MaxModelLength:
		return ErrModelTooLong
	case color == "":
		return ErrEmptyColor
	case len(color) > MaxColorLength:
		return ErrColorTooLong
	case !vehicleType.IsValid():
		return ErrInvalidType
	}
	return nil
}

func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) Plate() Plate         { return v.plate }
func (v *Vehicle) Make() string         { return v.make }
func (v *Vehicle) Model() string        { return v.model }
func (v *Vehicle) Color() string        { return v.color }
func (v *Vehicle) VehicleType() Type    { return v.vehicleType }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }
