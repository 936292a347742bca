package service

import (
	"context"
	"errors"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"github.com/confhall/registration-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	GetBookings(ctx context.Context, userID uint) ([]models.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID uint) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	hotelRepo   repository.HotelRepository
	ticketRepo  repository.TicketRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	hotelRepo repository.HotelRepository,
	ticketRepo repository.TicketRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		ticketRepo:  ticketRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) GetBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperr.NotFound("not found")
	}
	return bookings, nil
}

// checkBookingAccess is the same gating rule the hotel service applies, but
// every violation maps to 403 on the booking routes.
func (s *bookingService) checkBookingAccess(ctx context.Context, userID uint) error {
	ticket, err := s.ticketRepo.FindFirstByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Forbidden("not found")
		}
		return err
	}
	if ticket.Status != models.StatusPaid || !ticket.TicketType.IncludesHotel {
		return apperr.Forbidden("Payment request")
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	if err := s.checkBookingAccess(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.hotelRepo.FindRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("not found")
		}
		return nil, err
	}

	booking := &models.Booking{UserID: userID, RoomID: roomID}

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.bookingRepo.FindByRoomID(ctx, tx, roomID)
		if err == nil {
			return apperr.Forbidden("already reserved")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.bookingRepo.Create(ctx, tx, booking)
	})
	if err != nil {
		// A lost race surfaces as a unique violation on room_id.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Forbidden("already reserved")
		}
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.RoutingKeyBookingCreated, booking)
	}

	return booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID uint) (*models.Booking, error) {
	if bookingID == 0 {
		return nil, apperr.Forbidden("id invalido")
	}

	if err := s.checkBookingAccess(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.hotelRepo.FindRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("not found")
		}
		return nil, err
	}

	var booking *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.bookingRepo.FindByRoomID(ctx, tx, roomID)
		if err == nil {
			return apperr.Forbidden("already reserved")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		booking, err = s.bookingRepo.FindByIDAndUserID(ctx, bookingID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Forbidden("not reserved yet")
			}
			return err
		}

		if err := s.bookingRepo.UpdateRoom(ctx, tx, bookingID, roomID); err != nil {
			return err
		}
		booking.RoomID = roomID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Forbidden("already reserved")
		}
		return nil, err
	}

	return booking, nil
}
