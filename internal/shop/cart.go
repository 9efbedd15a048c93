package shop

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/session"
)

// ProductReader is the slice of ProductRepository the cart needs.
type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// AddToCartInput is the validated cart-add request.
type AddToCartInput struct {
	ProductID int64
	Quantity  int    // 0 means "not supplied", defaults to 1
	Size      string // optional, part of the line identity
}

// CartSummary describes the cart after a mutation.
type CartSummary struct {
	LineCount     int     `json:"cart_line_count"`
	TotalQuantity int     `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
}

// CartService owns all session-cart mutations. The cart lives inside
// the session record; callers persist the session after a successful
// mutation.
type CartService struct {
	products ProductReader
}

func NewCartService(products ProductReader) *CartService {
	return &CartService{products: products}
}

// AddToCart validates availability and merges the request into the
// session cart. Lines merge on (product, normalized size); a new line
// snapshots the product's current name, price and image. The stock
// check is a point-in-time read; concurrent adds may over-commit.
func (s *CartService) AddToCart(ctx context.Context, sess *session.Data, in AddToCartInput) (CartSummary, error) {
	if in.ProductID <= 0 {
		return CartSummary{}, errors.Wrap(ErrInvalidInput, "product_id is required")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return CartSummary{}, errors.Wrap(ErrInvalidInput, "quantity must be a positive integer")
	}

	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartSummary{}, ErrNotFound
		}
		return CartSummary{}, errors.Wrap(err, "query product")
	}

	size := domain.NormalizeSize(in.Size)
	idx := sess.Cart.FindLine(in.ProductID, size)

	// the existing line counts against stock together with the request
	inCart := 0
	if idx >= 0 {
		inCart = sess.Cart[idx].Quantity
	}
	if inCart+in.Quantity > product.Stock {
		return CartSummary{}, ErrInsufficientStock
	}

	if idx >= 0 {
		sess.Cart[idx].Quantity += in.Quantity
	} else {
		sess.Cart = append(sess.Cart, domain.CartLine{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			Price:     product.Price,
			Name:      product.Name,
			Image:     product.Image,
			Size:      size,
		})
	}

	zap.L().Debug("cart add",
		zap.Int64("user_id", sess.UserID),
		zap.Int64("product_id", product.ID),
		zap.String("size", size),
		zap.Int("quantity", in.Quantity))

	return s.summary(sess), nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of
// zero or less removes the line; raising above current stock fails.
func (s *CartService) UpdateQuantity(ctx context.Context, sess *session.Data, productID int64, size string, quantity int) (CartSummary, error) {
	idx := sess.Cart.FindLine(productID, size)
	if idx < 0 {
		return CartSummary{}, ErrNotFound
	}
	if quantity <= 0 {
		sess.Cart = append(sess.Cart[:idx], sess.Cart[idx+1:]...)
		return s.summary(sess), nil
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartSummary{}, ErrNotFound
		}
		return CartSummary{}, errors.Wrap(err, "query product")
	}
	if quantity > product.Stock {
		return CartSummary{}, ErrInsufficientStock
	}
	sess.Cart[idx].Quantity = quantity
	return s.summary(sess), nil
}

// RemoveFromCart drops the line for (product, size). Removing a line
// that is not present is a no-op.
func (s *CartService) RemoveFromCart(sess *session.Data, productID int64, size string) CartSummary {
	if idx := sess.Cart.FindLine(productID, size); idx >= 0 {
		sess.Cart = append(sess.Cart[:idx], sess.Cart[idx+1:]...)
	}
	return s.summary(sess)
}

// Summary returns the current cart totals without mutating anything.
func (s *CartService) Summary(sess *session.Data) CartSummary {
	return s.summary(sess)
}

func (s *CartService) summary(sess *session.Data) CartSummary {
	return CartSummary{
		LineCount:     len(sess.Cart),
		TotalQuantity: sess.Cart.TotalQuantity(),
		TotalAmount:   sess.Cart.TotalAmount(),
	}
}
