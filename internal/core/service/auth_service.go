package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// AuthService implements admin signup and login.
type AuthService struct {
	repo      ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AdminRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.Admin, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return "", nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(admin.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", admin.Email).Msg("admin account created")

	return token, admin, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reads the same as a wrong password to the caller.
		if err == domain.ErrAdminNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(admin.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", admin.Email).Msg("admin logged in")

	return token, admin, nil
}

func (s *AuthService) issueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
