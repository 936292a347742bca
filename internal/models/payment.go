package models

import "time"

type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TicketID       uint      `gorm:"not null;index" json:"ticket_id"`
	Value          int       `gorm:"not null" json:"value"`
	CardIssuer     string    `gorm:"not null" json:"card_issuer"`
	CardLastDigits string    `gorm:"type:varchar(4);not null" json:"card_last_digits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
