package projector

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName   = errors.New("projector name is required")
	ErrInvalidStatus = errors.New("invalid projector status")
)

// Projector is a bookable hardware unit. Only available projectors
// participate in allocation; createdAt is the allocator's FIFO tie-break.
type Projector struct {
	id        uuid.UUID
	name      string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewProjector(name string) (*Projector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Projector{
		id:     uuid.New(),
		name:   name,
		status: StatusAvailable,
	}, nil
}

func ReconstructProjector(id uuid.UUID, name string, status Status, createdAt, updatedAt time.Time) *Projector {
	return &Projector{
		id:        id,
		name:      name,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Projector) ID() uuid.UUID        { return p.id }
func (p *Projector) Name() string         { return p.name }
func (p *Projector) Status() Status       { return p.status }
func (p *Projector) CreatedAt() time.Time { return p.createdAt }
func (p *Projector) UpdatedAt() time.Time { return p.updatedAt }

func (p *Projector) IsAvailable() bool {
	return p.status == StatusAvailable
}

func (p *Projector) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	p.name = name
	return nil
}

func (p *Projector) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	p.status = status
	return nil
}
