package shop

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

// ProfileOverview is everything the profile page displays.
type ProfileOverview struct {
	User     *domain.User     `json:"user"`
	Orders   []domain.Order   `json:"orders"`
	Wishlist []domain.Product `json:"wishlist"`
}

// ProfileUpdateInput carries the editable account fields.
type ProfileUpdateInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Address   string `json:"address"`
}

// ProfileService aggregates a user's account, order history and
// wishlist for display, and applies profile edits.
type ProfileService struct {
	users    UserRepository
	orders   OrderRepository
	wishlist WishlistRepository
}

func NewProfileService(users UserRepository, orders OrderRepository, wishlist WishlistRepository) *ProfileService {
	return &ProfileService{users: users, orders: orders, wishlist: wishlist}
}

// Overview returns the user's profile page data: orders newest first
// with their items, plus the wishlist join.
func (s *ProfileService) Overview(ctx context.Context, userID int64) (*ProfileOverview, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "query user")
	}
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	wishlist, err := s.wishlist.ListProducts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list wishlist")
	}
	return &ProfileOverview{User: user, Orders: orders, Wishlist: wishlist}, nil
}

// UpdateProfile edits name and address.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, in ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "query user")
	}
	user.Firstname = strings.TrimSpace(in.Firstname)
	user.Lastname = strings.TrimSpace(in.Lastname)
	user.Address = strings.TrimSpace(in.Address)
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new
// bcrypt hash.
func (s *ProfileService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if len(next) < 6 {
		return errors.Wrap(ErrInvalidInput, "password must be at least 6 characters")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "query user")
	}
	if !common.CheckPassword(user.Password, current) {
		return ErrBadCredentials
	}
	hash, err := common.HashPassword(next)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	user.Password = hash
	user.UpdatedAt = time.Now()
	return errors.Wrap(s.users.Update(ctx, user), "update user")
}
