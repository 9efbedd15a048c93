package shop

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

// WishlistAction is a wishlist mutation verb.
type WishlistAction string

const (
	WishlistAdd    WishlistAction = "add"
	WishlistRemove WishlistAction = "remove"
)

// WishlistService implements the idempotent wishlist toggle.
type WishlistService struct {
	wishlist WishlistRepository
	products ProductReader
}

func NewWishlistService(wishlist WishlistRepository, products ProductReader) *WishlistService {
	return &WishlistService{wishlist: wishlist, products: products}
}

// Set applies the action to the (user, product) pair. Both verbs are
// idempotent; the returned bool is the membership state afterwards.
// Unknown products are rejected before any write.
func (s *WishlistService) Set(ctx context.Context, userID, productID int64, action WishlistAction) (bool, error) {
	if action != WishlistAdd && action != WishlistRemove {
		return false, errors.Wrap(ErrInvalidInput, "action must be add or remove")
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, errors.Wrap(err, "query product")
	}

	switch action {
	case WishlistAdd:
		if err := s.wishlist.Add(ctx, userID, productID); err != nil {
			return false, errors.Wrap(err, "add wishlist entry")
		}
		zap.L().Debug("wishlist add", zap.Int64("user_id", userID), zap.Int64("product_id", productID))
		return true, nil
	default:
		if err := s.wishlist.Remove(ctx, userID, productID); err != nil {
			return false, errors.Wrap(err, "remove wishlist entry")
		}
		zap.L().Debug("wishlist remove", zap.Int64("user_id", userID), zap.Int64("product_id", productID))
		return false, nil
	}
}

// Contains reports membership of the pair.
func (s *WishlistService) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	return s.wishlist.Exists(ctx, userID, productID)
}

// List returns the user's saved products, newest first.
func (s *WishlistService) List(ctx context.Context, userID int64) ([]domain.Product, error) {
	rows, err := s.wishlist.ListProducts(ctx, userID)
	return rows, errors.Wrap(err, "list wishlist")
}
