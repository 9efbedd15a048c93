package shop

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

// AuthService verifies credentials and creates accounts. Session
// issuance happens at the handler layer.
type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login checks email and password and stamps last_login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, errors.Wrap(err, "query user")
	}
	if !common.CheckPassword(user.Password, password) {
		return nil, ErrBadCredentials
	}
	user.LastLogin = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		zap.L().Warn("failed to stamp last login", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	return user, nil
}

// RegisterInput carries a new account request.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Address   string `json:"address"`
}

// Register creates a customer account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, errors.Wrap(ErrInvalidInput, "a valid email is required")
	}
	if len(in.Password) < 6 {
		return nil, errors.Wrap(ErrInvalidInput, "password must be at least 6 characters")
	}
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "query user")
	}
	hash, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	now := time.Now()
	user := &domain.User{
		ID:        common.UUIDint64(),
		Email:     in.Email,
		Password:  hash,
		Firstname: strings.TrimSpace(in.Firstname),
		Lastname:  strings.TrimSpace(in.Lastname),
		Address:   strings.TrimSpace(in.Address),
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	zap.L().Info("registered account", zap.String("email", user.Email))
	return user, nil
}
