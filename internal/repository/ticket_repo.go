package repository

import (
	"context"

	"github.com/confhall/registration-api/internal/models"
	"gorm.io/gorm"
)

type TicketRepository interface {
	FindTypes(ctx context.Context) ([]models.TicketType, error)
	FindTypeByID(ctx context.Context, id uint) (*models.TicketType, error)
	// FindFirstByUserID returns the user's oldest ticket with its type
	// preloaded. Users may hold several tickets; the oldest one gates
	// hotel access.
	FindFirstByUserID(ctx context.Context, userID uint) (*models.Ticket, error)
	FindByID(ctx context.Context, id uint) (*models.Ticket, error)
	Create(ctx context.Context, ticket *models.Ticket) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, ticketID uint, status models.TicketStatus) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) FindTypes(ctx context.Context) ([]models.TicketType, error) {
	var types []models.TicketType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *ticketRepository) FindTypeByID(ctx context.Context, id uint) (*models.TicketType, error) {
	var ticketType models.TicketType
	if err := r.db.WithContext(ctx).First(&ticketType, id).Error; err != nil {
		return nil, err
	}
	return &ticketType, nil
}

func (r *ticketRepository) FindFirstByUserID(ctx context.Context, userID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.id = tickets.enrollment_id").
		Where("enrollments.user_id = ?", userID).
		Order("tickets.id ASC").
		Preload("TicketType").
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, ticketID uint, status models.TicketStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("id = ?", ticketID).
		Update("status", status).Error
}
