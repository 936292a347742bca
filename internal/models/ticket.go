package models

import "time"

type TicketStatus string

const (
	StatusReserved TicketStatus = "RESERVED"
	StatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Price         int       `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"isRemote"`
	IncludesHotel bool      `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"not null" json:"ticket_type_id"`
	EnrollmentID uint         `gorm:"not null" json:"enrollment_id"`
	Status       TicketStatus `gorm:"type:varchar(20);not null;default:'RESERVED'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	TicketType *TicketType `gorm:"foreignKey:TicketTypeID" json:"ticket_type,omitempty"`
}
