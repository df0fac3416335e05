package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotAvailabilityView struct {
	Slot             int                   `json:"slot"`
	Label            string                `json:"label"`
	StartTime        string                `json:"startTime"`
	EndTime          string                `json:"endTime"`
	Period           string                `json:"period"`
	ReservedCount    int                   `json:"reservedCount"`
	AvailableCount   int                   `json:"availableCount"`
	TotalProjectors  int                   `json:"totalProjectors"`
	IsReservedByUser bool                  `json:"isReservedByUser"`
	Reservations     []SlotReservationView `json:"reservations,omitempty"`
}

type SlotReservationView struct {
	UserName      string `json:"userName"`
	UserArea      string `json:"userArea"`
	ProjectorName string `json:"projectorName"`
}

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	Slots         []int     `json:"slots"`
	UserID        uuid.UUID `json:"userId"`
	ProjectorID   uuid.UUID `json:"projectorId"`
	ProjectorName string    `json:"projectorName"`
	Expired       bool      `json:"expired"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ReportRecord struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	Slots         []int     `json:"slots"`
	UserName      string    `json:"userName"`
	UserArea      string    `json:"userArea"`
	UserEmail     string    `json:"userEmail"`
	ProjectorName string    `json:"projectorName"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ProjectorView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Area  string    `json:"area"`
	Role  string    `json:"role"`
}

type ReportFilter struct {
	StartDate     string
	EndDate       string
	Area          *string
	ProfessorName *string
}
