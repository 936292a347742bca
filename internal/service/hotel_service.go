package service

import (
	"context"
	"errors"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"gorm.io/gorm"
)

type HotelService interface {
	GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error)
	GetHotelRooms(ctx context.Context, userID, hotelID uint) (*models.Hotel, error)
}

type hotelService struct {
	hotelRepo  repository.HotelRepository
	ticketRepo repository.TicketRepository
}

func NewHotelService(hotelRepo repository.HotelRepository, ticketRepo repository.TicketRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo, ticketRepo: ticketRepo}
}

// checkHotelAccess enforces the hotel gating rule: the user's oldest ticket
// must exist, be PAID and include hotel access.
func (s *hotelService) checkHotelAccess(ctx context.Context, userID uint) error {
	ticket, err := s.ticketRepo.FindFirstByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("not found")
		}
		return err
	}
	if ticket.Status != models.StatusPaid || !ticket.TicketType.IncludesHotel {
		return apperr.PaymentRequired("Payment request")
	}
	return nil
}

func (s *hotelService) GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}
	return s.hotelRepo.FindAll(ctx)
}

func (s *hotelService) GetHotelRooms(ctx context.Context, userID, hotelID uint) (*models.Hotel, error) {
	if hotelID == 0 {
		return nil, apperr.BadRequest("id invalido")
	}
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.FindByIDWithRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("not found")
		}
		return nil, err
	}
	return hotel, nil
}
