package service

import (
	"context"
	"errors"
	"time"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	GetEnrollment(ctx context.Context, userID uint) (*models.Enrollment, error)
	UpsertEnrollment(ctx context.Context, userID uint, name, cpf, phone string, birthday time.Time) (*models.Enrollment, error)
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
}

func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{enrollmentRepo: enrollmentRepo}
}

func (s *enrollmentService) GetEnrollment(ctx context.Context, userID uint) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("not found")
		}
		return nil, err
	}
	return enrollment, nil
}

// UpsertEnrollment creates the caller's enrollment on first submission and
// rewrites it afterwards. One enrollment per user.
func (s *enrollmentService) UpsertEnrollment(ctx context.Context, userID uint, name, cpf, phone string, birthday time.Time) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		enrollment = &models.Enrollment{
			Name:     name,
			CPF:      cpf,
			Phone:    phone,
			Birthday: birthday,
			UserID:   userID,
		}
		if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
			return nil, err
		}
		return enrollment, nil
	}

	enrollment.Name = name
	enrollment.CPF = cpf
	enrollment.Phone = phone
	enrollment.Birthday = birthday
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
