package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/dto"
	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"github.com/confhall/registration-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

type PaymentService interface {
	GetPayment(ctx context.Context, userID, ticketID uint) (*models.Payment, error)
	ProcessPayment(ctx context.Context, userID uint, req dto.PaymentRequest) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo    repository.PaymentRepository
	ticketRepo     repository.TicketRepository
	enrollmentRepo repository.EnrollmentRepository
	publisher      *rabbitmq.Publisher
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	ticketRepo repository.TicketRepository,
	enrollmentRepo repository.EnrollmentRepository,
	publisher *rabbitmq.Publisher,
) PaymentService {
	return &paymentService{
		paymentRepo:    paymentRepo,
		ticketRepo:     ticketRepo,
		enrollmentRepo: enrollmentRepo,
		publisher:      publisher,
	}
}

// checkOwnership verifies that the ticket belongs to the caller's enrollment.
// A caller without an enrollment cannot own any ticket.
func (s *paymentService) checkOwnership(ctx context.Context, userID uint, ticket *models.Ticket) error {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Unauthorized("user doesnt own given ticket")
		}
		return err
	}
	if enrollment.ID != ticket.EnrollmentID {
		return apperr.Unauthorized("user doesnt own given ticket")
	}
	return nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID, ticketID uint) (*models.Payment, error) {
	if ticketID == 0 {
		return nil, apperr.BadRequest("ticketId invalido")
	}

	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ticket não existe")
		}
		return nil, err
	}

	if err := s.checkOwnership(ctx, userID, ticket); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindFirstByTicketAndUser(ctx, ticketID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("usuario nao associado")
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ProcessPayment(ctx context.Context, userID uint, req dto.PaymentRequest) (*models.Payment, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ticketId não existe")
		}
		return nil, err
	}

	if ticket.Status == models.StatusPaid {
		return nil, apperr.Unauthorized("ticket ja pago")
	}

	if err := s.checkOwnership(ctx, userID, ticket); err != nil {
		return nil, err
	}

	ticketType, err := s.ticketRepo.FindTypeByID(ctx, ticket.TicketTypeID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		TicketID:       ticket.ID,
		Value:          ticketType.Price,
		CardIssuer:     req.CardData.Issuer,
		CardLastDigits: lastFourDigits(req.CardData.Number),
	}

	// Payment row and RESERVED->PAID transition commit together.
	err = s.paymentRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return apperr.Unauthorized("usuario nao associado")
		}
		return s.ticketRepo.UpdateStatus(ctx, tx, ticket.ID, models.StatusPaid)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.RoutingKeyPaymentConfirmed, payment)
	}

	return payment, nil
}

func lastFourDigits(number int64) string {
	digits := strconv.FormatInt(number, 10)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
