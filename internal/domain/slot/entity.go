package slot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel      = errors.New("slot label cannot be empty")
	ErrLabelTooLong    = errors.New("slot label is too long (max 10 characters)")
	ErrAlreadyOccupied = errors.New("slot is already occupied")
	ErrAlreadyFree     = errors.New("slot is already free")
	ErrOccupied        = errors.New("slot is occupied")
	ErrInvalidStatus   = errors.New("invalid slot status")
)

const MaxLabelLength = 10

type Status string

const (
	StatusFree     Status = "FREE"
	StatusOccupied Status = "OCCUPIED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusOccupied:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Slot is a single parking space. Status transitions go through Occupy and
// Release only; a slot referenced by an active session is always OCCUPIED.
type Slot struct {
	id        uuid.UUID
	label     string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewSlot creates an administrative slot. New slots always start FREE.
func NewSlot(label string) (*Slot, error) {
	normalized, err := normalizeLabel(label)
	if err != nil {
		return nil, err
	}

	return &Slot{
		id:     uuid.New(),
		label:  normalized,
		status: StatusFree,
	}, nil
}

func ReconstructSlot(id uuid.UUID, label string, status Status, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		id:        id,
		label:     label,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Slot) Occupy() error {
	if s.status == StatusOccupied {
		return ErrAlreadyOccupied
	}
	s.status = StatusOccupied
	return nil
}

func (s *Slot) Release() error {
	if s.status == StatusFree {
		return ErrAlreadyFree
	}
	s.status = StatusFree
	return nil
}

func (s *Slot) IsFree() bool {
	return s.status == StatusFree
}

// EnsureDeletable rejects deletion while a vehicle occupies the slot.
func (s *Slot) EnsureDeletable() error {
	if s.status == StatusOccupied {
		return ErrOccupied
	}
	return nil
}

func (s *Slot) Rename(label string) error {
	normalized, err := normalizeLabel(label)
	if err != nil {
		return err
	}
	s.label = normalized
	return nil
}

func normalizeLabel(label string) (string, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return "", ErrEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return "", ErrLabelTooLong
	}
	return label, nil
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) Label() string        { return s.label }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
