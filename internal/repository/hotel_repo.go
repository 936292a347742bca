package repository

import (
	"context"

	"github.com/confhall/registration-api/internal/models"
	"gorm.io/gorm"
)

type HotelRepository interface {
	FindAll(ctx context.Context) ([]models.Hotel, error)
	FindByIDWithRooms(ctx context.Context, id uint) (*models.Hotel, error)
	FindRoomByID(ctx context.Context, id uint) (*models.Room, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) FindByIDWithRooms(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).Preload("Rooms").First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
