package repository

import (
	"context"

	"github.com/confhall/registration-api/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]models.Booking, error)
	// FindByRoomID runs inside the booking transaction so the room check and
	// the write see the same state.
	FindByRoomID(ctx context.Context, tx *gorm.DB, roomID uint) (*models.Booking, error)
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*models.Booking, error)
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Preload("Room").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByRoomID(ctx context.Context, tx *gorm.DB, roomID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).Where("room_id = ?", roomID).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error
}
