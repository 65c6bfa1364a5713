package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	clock    clockwork.Clock
}

func NewService(userRepo repository.UserRepository, cfg *config.Config, clock clockwork.Clock) Authenticator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		clock:    clock,
	}
}

func normalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching user by email")
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to fetch user")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "wrong password")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewUserAuthError(errors.Wrap(err, "signing token"), apiErrors.ErrInternalServer, user.ID, "")
	}

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching user profile")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.clock.Now()
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
