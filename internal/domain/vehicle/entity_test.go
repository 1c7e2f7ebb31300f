//go:build unit

package vehicle_test

import (
	"strings"
	"testing"

	"smartpark/internal/domain/vehicle"
	"smartpark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VehicleBuilder)
	errIs  error
}

func TestVehicle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "ABC1234", actual.Plate().Value())
		assert.Equal(t, "Toyota", actual.Make())
		assert.Equal(t, "Corolla", actual.Model())
		assert.Equal(t, "Silver", actual.Color())
		assert.Equal(t, vehicle.TypeCar, actual.VehicleType())
	})

	t.Run("plate validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "legacy layout",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("XYZ9876") },
			},
			{
				name:   "mercosul layout",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("ABC1D23") },
			},
			{
				name:   "lower case is normalized",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("abc1234") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("AB1234") },
				errIs:  vehicle.ErrInvalidPlate,
			},
			{
				name:   "too long",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("ABCD1234") },
				errIs:  vehicle.ErrInvalidPlate,
			},
			{
				name:   "letter in a digit position",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("ABCD23X") },
				errIs:  vehicle.ErrInvalidPlate,
			},
			{
				name:   "empty plate",
				mutate: func(b *builder.VehicleBuilder) { b.WithPlate("") },
				errIs:  vehicle.ErrInvalidPlate,
			},
		})
	})

	t.Run("attribute validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty make",
				mutate: func(b *builder.VehicleBuilder) { b.WithMake("  ") },
				errIs:  vehicle.ErrEmptyMake,
			},
			{
				name:   "make too long",
				mutate: func(b *builder.VehicleBuilder) { b.WithMake(strings.Repeat("a", vehicle.MaxMakeLength+1)) },
				errIs:  vehicle.ErrMakeTooLong,
			},
			{
				name:   "empty model",
				mutate: func(b *builder.VehicleBuilder) { b.WithModel("") },
				errIs:  vehicle.ErrEmptyModel,
			},
			{
				name:   "model too long",
				mutate: func(b *builder.VehicleBuilder) { b.WithModel(strings.Repeat("a", vehicle.MaxModelLength+1)) },
				errIs:  vehicle.ErrModelTooLong,
			},
			{
				name:   "empty color",
				mutate: func(b *builder.VehicleBuilder) { b.WithColor("") },
				errIs:  vehicle.ErrEmptyColor,
			},
			{
				name:   "color too long",
				mutate: func(b *builder.VehicleBuilder) { b.WithColor(strings.Repeat("a", vehicle.MaxColorLength+1)) },
				errIs:  vehicle.ErrColorTooLong,
			},
			{
				name:   "unknown vehicle type",
				mutate: func(b *builder.VehicleBuilder) { b.WithType("BICYCLE") },
				errIs:  vehicle.ErrInvalidType,
			},
			{
				name:   "motorcycle type",
				mutate: func(b *builder.VehicleBuilder) { b.WithType("MOTORCYCLE") },
			},
			{
				name:   "lower case type is normalized",
				mutate: func(b *builder.VehicleBuilder) { b.WithType("truck") },
			},
		})
	})

	t.Run("update attributes", func(t *testing.T) {
		v, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, v.UpdateAttributes(" Honda ", "Civic", "Black", vehicle.TypeCar))
		assert.Equal(t, "Honda", v.Make())
		assert.Equal(t, "Civic", v.Model())
		assert.Equal(t, "Black", v.Color())
	})

	t.Run("update attributes keeps state on validation failure", func(t *testing.T) {
		v, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)

		err = v.UpdateAttributes("", "Civic", "Black", vehicle.TypeCar)
		require.ErrorIs(t, err, vehicle.ErrEmptyMake)
		assert.Equal(t, "Toyota", v.Make())
		assert.Equal(t, "Corolla", v.Model())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVehicleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
