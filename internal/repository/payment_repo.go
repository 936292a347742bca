package repository

import (
	"context"

	"github.com/confhall/registration-api/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	// FindFirstByTicketAndUser scopes the lookup to tickets owned by the
	// user's enrollment so a payment can never leak across owners.
	FindFirstByTicketAndUser(ctx context.Context, ticketID, userID uint) (*models.Payment, error)
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	GetDB() *gorm.DB
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *paymentRepository) FindFirstByTicketAndUser(ctx context.Context, ticketID, userID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN tickets ON tickets.id = payments.ticket_id").
		Joins("JOIN enrollments ON enrollments.id = tickets.enrollment_id").
		Where("payments.ticket_id = ? AND enrollments.user_id = ?", ticketID, userID).
		Order("payments.id ASC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}
