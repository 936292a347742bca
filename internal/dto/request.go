package dto

import "time"

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EnrollmentRequest struct {
	Name     string    `json:"name"`
	CPF      string    `json:"cpf"`
	Birthday time.Time `json:"birthday"`
	Phone    string    `json:"phone"`
}

type CreateTicketRequest struct {
	TicketTypeID uint `json:"ticketTypeId"`
}

type CreateBookingRequest struct {
	RoomID uint `json:"roomId"`
}

type CardData struct {
	Issuer         string `json:"issuer"`
	Number         int64  `json:"number"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expirationDate"`
	CVV            int    `json:"cvv"`
}

type PaymentRequest struct {
	TicketID uint     `json:"ticketId"`
	CardData CardData `json:"cardData"`
}
