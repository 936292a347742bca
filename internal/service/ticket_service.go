package service

import (
	"context"
	"errors"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"gorm.io/gorm"
)

type TicketService interface {
	GetTicketTypes(ctx context.Context) ([]models.TicketType, error)
	GetTicket(ctx context.Context, userID uint) (*models.Ticket, error)
	CreateTicket(ctx context.Context, userID, ticketTypeID uint) (*models.Ticket, error)
}

type ticketService struct {
	ticketRepo     repository.TicketRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewTicketService(ticketRepo repository.TicketRepository, enrollmentRepo repository.EnrollmentRepository) TicketService {
	return &ticketService{ticketRepo: ticketRepo, enrollmentRepo: enrollmentRepo}
}

func (s *ticketService) GetTicketTypes(ctx context.Context) ([]models.TicketType, error) {
	return s.ticketRepo.FindTypes(ctx)
}

// GetTicket returns the user's oldest ticket. A user may hold several; the
// oldest one is the one every gating rule looks at.
func (s *ticketService) GetTicket(ctx context.Context, userID uint) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindFirstByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("not found")
		}
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, userID, ticketTypeID uint) (*models.Ticket, error) {
	if ticketTypeID == 0 {
		return nil, apperr.BadRequest("ticketTypeId invalido")
	}

	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user doesnt have enrollment yet")
		}
		return nil, err
	}

	if _, err := s.ticketRepo.FindTypeByID(ctx, ticketTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ticketTypeId invalido")
		}
		return nil, err
	}

	// No duplicate check: a user may accumulate multiple tickets.
	ticket := &models.Ticket{
		TicketTypeID: ticketTypeID,
		EnrollmentID: enrollment.ID,
		Status:       models.StatusReserved,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}
