package domain

import "strings"

// CartLine is one row in a session cart, keyed by (product, size).
// Name, Price and Image are snapshots taken when the line was added;
// price is not re-read later.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Size      string  `json:"size,omitempty"`
}

// NormalizeSize canonicalizes a size label for merge-key comparison.
// An absent size and an empty string are the same key.
func NormalizeSize(size string) string {
	return strings.TrimSpace(size)
}

// Cart is the session-scoped line collection.
type Cart []CartLine

// FindLine returns the index of the line matching (productID, size),
// or -1 when no line matches.
func (c Cart) FindLine(productID int64, size string) int {
	size = NormalizeSize(size)
	for i := range c {
		if c[i].ProductID == productID && NormalizeSize(c[i].Size) == size {
			return i
		}
	}
	return -1
}

// TotalQuantity returns the sum of all line quantities.
func (c Cart) TotalQuantity() int {
	var n int
	for i := range c {
		n += c[i].Quantity
	}
	return n
}

// TotalAmount returns the sum of price*quantity over all lines.
func (c Cart) TotalAmount() float64 {
	var total float64
	for i := range c {
		total += c[i].Price * float64(c[i].Quantity)
	}
	return total
}
