package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

func TestLogin(t *testing.T) {
	hash, err := common.HashPassword("secret123")
	require.NoError(t, err)

	users := new(mockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com", Password: hash}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(users)

	// email is trimmed and lowercased before lookup
	user, err := svc.Login(context.Background(), "  Jane@Example.COM ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.LastLogin.IsZero())
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := common.HashPassword("secret123")
	require.NoError(t, err)

	users := new(mockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com", Password: hash}, nil)

	svc := NewAuthService(users)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(mockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(users)

	_, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestRegister(t *testing.T) {
	users := new(mockUserRepository)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && !u.IsAdmin && u.ID != 0
	})).Return(nil)

	svc := NewAuthService(users)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "New@Example.com",
		Password:  "secret123",
		Firstname: "New",
		Lastname:  "User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	// stored hash verifies against the plaintext
	assert.True(t, common.CheckPassword(user.Password, "secret123"))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(new(mockUserRepository))
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "not-an-email", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterDuplicate(t *testing.T) {
	users := new(mockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)

	svc := NewAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "jane@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
