package service

import (
	"context"
	"errors"
	"time"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"github.com/confhall/registration-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, sessionRepo: sessionRepo, jwtSecret: jwtSecret}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, Password: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email already in use")
		}
		return nil, err
	}
	return user, nil
}

// SignIn issues a JWT and records it as a session. The auth middleware only
// accepts tokens that still have a session row.
func (s *authService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("invalid email or password")
	}

	signed, err := token.Generate(s.jwtSecret, user.ID, sessionTTL)
	if err != nil {
		return nil, "", err
	}

	session := &models.Session{UserID: user.ID, Token: signed}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", err
	}

	return user, signed, nil
}
