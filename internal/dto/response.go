package dto

import (
	"time"

	"github.com/confhall/registration-api/internal/models"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type SignInResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type TicketResponse struct {
	ID           uint                `json:"id"`
	Status       models.TicketStatus `json:"status"`
	TicketTypeID uint                `json:"ticketTypeId"`
	EnrollmentID uint                `json:"enrollmentId"`
	TicketType   *models.TicketType  `json:"TicketType,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type BookingResponse struct {
	ID        uint         `json:"id"`
	UserID    uint         `json:"userId"`
	RoomID    uint         `json:"roomId"`
	Room      *models.Room `json:"Room,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type PaymentResponse struct {
	ID             uint      `json:"id"`
	TicketID       uint      `json:"ticketId"`
	Value          int       `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

func ToTicketResponse(t *models.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		Status:       t.Status,
		TicketTypeID: t.TicketTypeID,
		EnrollmentID: t.EnrollmentID,
		TicketType:   t.TicketType,
		CreatedAt:    t.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		Room:      b.Room,
		CreatedAt: b.CreatedAt,
	}
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		TicketID:       p.TicketID,
		Value:          p.Value,
		CardIssuer:     p.CardIssuer,
		CardLastDigits: p.CardLastDigits,
		CreatedAt:      p.CreatedAt,
	}
}
