package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/confhall/registration-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetBookings_Empty(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) ([]models.Booking, error) {
			return []models.Booking{}, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockHotelRepo{}, &mockTicketRepo{}, nil)

	_, err := svc.GetBookings(context.Background(), 1)

	requireRequestError(t, err, http.StatusNotFound)
}

func TestGetBookings_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByUserIDFn: func(ctx context.Context, userID uint) ([]models.Booking, error) {
			return []models.Booking{{ID: 1, UserID: userID, RoomID: 4}}, nil
		},
	}
	svc := NewBookingService(bookingRepo, &mockHotelRepo{}, &mockTicketRepo{}, nil)

	bookings, err := svc.GetBookings(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

// Gating violations on the booking routes map to 403, not 402.
func TestCreateBooking_NoTicket(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		findFirstByUserFn: func(ctx context.Context, userID uint) (*models.Ticket, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, &mockHotelRepo{}, ticketRepo, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 4)

	reqErr := requireRequestError(t, err, http.StatusForbidden)
	assert.Equal(t, "not found", reqErr.Message)
}

func TestCreateBooking_TicketWithoutHotel(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		findFirstByUserFn: func(ctx context.Context, userID uint) (*models.Ticket, error) {
			return remoteTicket(), nil
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, &mockHotelRepo{}, ticketRepo, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 4)

	reqErr := requireRequestError(t, err, http.StatusForbidden)
	assert.Equal(t, "Payment request", reqErr.Message)
}

func TestCreateBooking_TicketNotPaid(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		findFirstByUserFn: func(ctx context.Context, userID uint) (*models.Ticket, error) {
			return reservedHotelTicket(), nil
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, &mockHotelRepo{}, ticketRepo, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 4)

	requireRequestError(t, err, http.StatusForbidden)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		findFirstByUserFn: func(ctx context.Context, userID uint) (*models.Ticket, error) {
			return paidHotelTicket(), nil
		},
	}
	hotelRepo := &mockHotelRepo{
		findRoomByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, hotelRepo, ticketRepo, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 99)

	requireRequestError(t, err, http.StatusNotFound)
}

func TestUpdateBooking_ZeroBookingID(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockHotelRepo{}, &mockTicketRepo{}, nil)

	_, err := svc.UpdateBooking(context.Background(), 1, 4, 0)

	reqErr := requireRequestError(t, err, http.StatusForbidden)
	assert.Equal(t, "id invalido", reqErr.Message)
}

func TestUpdateBooking_RoomNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		findFirstByUserFn: func(ctx context.Context, userID uint) (*models.Ticket, error) {
			return paidHotelTicket(), nil
		},
	}
	hotelRepo := &mockHotelRepo{
		findRoomByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, hotelRepo, ticketRepo, nil)

	_, err := svc.UpdateBooking(context.Background(), 1, 99, 1)

	requireRequestError(t, err, http.StatusNotFound)
}
