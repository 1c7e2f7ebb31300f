//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"smartpark/internal/domain/parking"
	"smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/shared"
	"smartpark/tests/common/builder"
	queriesmock "smartpark/tests/mock/queries"
	sharedmock "smartpark/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

func entryRequest() request.RegisterEntryRequest {
	return request.RegisterEntryRequest{
		Plate:       "ABC1234",
		Make:        "Toyota",
		Model:       "Corolla",
		Color:       "Silver",
		VehicleType: "CAR",
	}
}

type ParkingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	slots    *sharedmock.MockSlotRepository
	vehicles *sharedmock.MockVehicleRepository
	sessions *sharedmock.MockSessionRepository
	queries  *queriesmock.MockSessionQueries
	clock    *clock.MockClock
	commands commands.ParkingCommands
}

func TestParkingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ParkingCommandsTestSuite))
}

func (s *ParkingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.slots = sharedmock.NewMockSlotRepository(s.ctrl)
	s.vehicles = sharedmock.NewMockVehicleRepository(s.ctrl)
	s.sessions = sharedmock.NewMockSessionRepository(s.ctrl)
	s.queries = queriesmock.NewMockSessionQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	s.commands = commands.NewParkingCommands(s.uow, s.queries, parking.DefaultTariff(), s.clock)

	s.tx.EXPECT().Slots().Return(s.slots).AnyTimes()
	s.tx.EXPECT().Vehicles().Return(s.vehicles).AnyTimes()
	s.tx.EXPECT().Sessions().Return(s.sessions).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
}

func (s *ParkingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ParkingCommandsTestSuite) TestRegisterEntry() {
	s.Run("success", func() {
		freeSlot, err := builder.NewSlotBuilder().WithLabel("A01").BuildDomain()
		s.Require().NoError(err)
		vehicleID := uuid.New()
		sessionID := uuid.New()
		view := builder.NewSessionBuilder().WithID(sessionID).BuildView()

		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(nil, errNotFound)
		s.slots.EXPECT().AcquireFree(gomock.Any(), gomock.Any()).Return(freeSlot, nil)
		s.slots.EXPECT().Occupy(gomock.Any(), gomock.Any(), freeSlot.ID()).Return(nil)
		s.vehicles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(vehicleID, nil)
		s.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, session *parking.Session) (uuid.UUID, error) {
				s.Equal(vehicleID, session.VehicleID())
				s.Equal(freeSlot.ID(), session.SlotID())
				s.Equal(s.clock.Now(), session.EnteredAt())
				s.True(session.IsActive())
				return sessionID, nil
			},
		)
		s.queries.EXPECT().GetByID(gomock.Any(), sessionID).Return(view, nil)

		got, err := s.commands.RegisterEntry(context.Background(), entryRequest())

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("invalid plate", func() {
		req := entryRequest()
		req.Plate = "BADPLATE1"

		_, err := s.commands.RegisterEntry(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("vehicle already parked", func() {
		active := &shared.ActiveSessionSnapshot{
			ID:        uuid.New(),
			Plate:     "ABC1234",
			SlotLabel: "B03",
			EnteredAt: s.clock.Now().Add(-time.Hour),
		}
		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(active, nil)

		_, err := s.commands.RegisterEntry(context.Background(), entryRequest())

		s.Require().ErrorIs(err, commands.ErrVehicleAlreadyParked)
		s.Contains(err.Error(), "B03")
	})

	s.Run("no free slot", func() {
		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(nil, errNotFound)
		s.slots.EXPECT().AcquireFree(gomock.Any(), gomock.Any()).Return(nil, errNotFound)

		_, err := s.commands.RegisterEntry(context.Background(), entryRequest())

		s.Require().ErrorIs(err, commands.ErrNoFreeSlot)
	})

	s.Run("concurrent occupy conflict maps to full lot", func() {
		freeSlot, err := builder.NewSlotBuilder().BuildDomain()
		s.Require().NoError(err)

		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(nil, errNotFound)
		s.slots.EXPECT().AcquireFree(gomock.Any(), gomock.Any()).Return(freeSlot, nil)
		s.slots.EXPECT().Occupy(gomock.Any(), gomock.Any(), freeSlot.ID()).
			Return(infra.WrapRepoErr("slot not free", nil, infra.KindConflict))

		_, err = s.commands.RegisterEntry(context.Background(), entryRequest())

		s.Require().ErrorIs(err, commands.ErrNoFreeSlot)
	})

	s.Run("duplicate active session surfaces as already parked", func() {
		freeSlot, err := builder.NewSlotBuilder().BuildDomain()
		s.Require().NoError(err)

		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(nil, errNotFound)
		s.slots.EXPECT().AcquireFree(gomock.Any(), gomock.Any()).Return(freeSlot, nil)
		s.slots.EXPECT().Occupy(gomock.Any(), gomock.Any(), freeSlot.ID()).Return(nil)
		s.vehicles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("active session exists", nil, infra.KindConflict))

		_, err = s.commands.RegisterEntry(context.Background(), entryRequest())

		s.Require().ErrorIs(err, commands.ErrVehicleAlreadyParked)
	})
}

func (s *ParkingCommandsTestSuite) TestRegisterExit() {
	s.Run("success with charge for the stay", func() {
		enteredAt := s.clock.Now().Add(-90 * time.Minute)
		active := &shared.ActiveSessionSnapshot{
			ID:        uuid.New(),
			VehicleID: uuid.New(),
			SlotID:    uuid.New(),
			SlotLabel: "A01",
			Plate:     "ABC1234",
			EnteredAt: enteredAt,
		}
		view := builder.NewSessionBuilder().WithID(active.ID).Closed(s.clock.Now(), 700).BuildView()

		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(active, nil)
		s.sessions.EXPECT().Close(gomock.Any(), gomock.Any(), active.ID, s.clock.Now(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, _ uuid.UUID, _ time.Time, charge parking.Money) error {
				s.Equal(int64(700), charge.Cents())
				return nil
			},
		)
		s.slots.EXPECT().Release(gomock.Any(), gomock.Any(), active.SlotID).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), active.ID).Return(view, nil)

		got, err := s.commands.RegisterExit(context.Background(), "ABC1234")

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("invalid plate", func() {
		_, err := s.commands.RegisterExit(context.Background(), "??")

		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("no active session", func() {
		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(nil, errNotFound)

		_, err := s.commands.RegisterExit(context.Background(), "ABC1234")

		s.Require().ErrorIs(err, commands.ErrNoActiveSession)
	})

	s.Run("already closed concurrently", func() {
		active := &shared.ActiveSessionSnapshot{
			ID:        uuid.New(),
			SlotID:    uuid.New(),
			Plate:     "ABC1234",
			EnteredAt: s.clock.Now().Add(-time.Hour),
		}
		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(active, nil)
		s.sessions.EXPECT().Close(gomock.Any(), gomock.Any(), active.ID, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("session not active", nil, infra.KindConflict))

		_, err := s.commands.RegisterExit(context.Background(), "ABC1234")

		s.Require().ErrorIs(err, commands.ErrNoActiveSession)
	})

	s.Run("release failure aborts the exit", func() {
		active := &shared.ActiveSessionSnapshot{
			ID:        uuid.New(),
			SlotID:    uuid.New(),
			Plate:     "ABC1234",
			EnteredAt: s.clock.Now().Add(-time.Hour),
		}
		releaseErr := infra.WrapRepoErr("release failed", nil, infra.KindDBFailure)

		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(active, nil)
		s.sessions.EXPECT().Close(gomock.Any(), gomock.Any(), active.ID, gomock.Any(), gomock.Any()).Return(nil)
		s.slots.EXPECT().Release(gomock.Any(), gomock.Any(), active.SlotID).Return(releaseErr)

		_, err := s.commands.RegisterExit(context.Background(), "ABC1234")

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})

	s.Run("grace period exit is free", func() {
		active := &shared.ActiveSessionSnapshot{
			ID:        uuid.New(),
			SlotID:    uuid.New(),
			Plate:     "ABC1234",
			EnteredAt: s.clock.Now().Add(-10 * time.Minute),
		}
		view := builder.NewSessionBuilder().WithID(active.ID).Closed(s.clock.Now(), 0).BuildView()

		s.sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(active, nil)
		s.sessions.EXPECT().Close(gomock.Any(), gomock.Any(), active.ID, s.clock.Now(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, _ uuid.UUID, _ time.Time, charge parking.Money) error {
				s.True(charge.IsZero())
				return nil
			},
		)
		s.slots.EXPECT().Release(gomock.Any(), gomock.Any(), active.SlotID).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), active.ID).Return(view, nil)

		got, err := s.commands.RegisterExit(context.Background(), "ABC1234")

		s.Require().NoError(err)
		s.Equal(view, got)
	})
}

func TestRegisterEntryPlateNormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	sessionQueries := queriesmock.NewMockSessionQueries(ctrl)
	c := commands.NewParkingCommands(uow, sessionQueries, parking.DefaultTariff(), clock.NewMockClock(time.Now()))

	tx := sharedmock.NewMockTx(ctrl)
	sessions := sharedmock.NewMockSessionRepository(ctrl)
	tx.EXPECT().Sessions().Return(sessions).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		},
	)

	// Lookup must use the canonical upper-case plate.
	active := &shared.ActiveSessionSnapshot{Plate: "ABC1234", SlotLabel: "A01", EnteredAt: time.Now()}
	sessions.EXPECT().FindActiveByPlate(gomock.Any(), gomock.Any(), "ABC1234").Return(active, nil)

	req := entryRequest()
	req.Plate = " abc1234 "
	_, err := c.RegisterEntry(context.Background(), req)

	require.ErrorIs(t, err, commands.ErrVehicleAlreadyParked)
	assert.Contains(t, err.Error(), "A01")
}
