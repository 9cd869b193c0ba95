package entity

import "github.com/google/uuid"

// CartItem is one line of a user's cart. Price is a snapshot taken when the
// line was added, not re-read from a catalog.
type CartItem struct {
	UserID    uuid.UUID `db:"user_id"`
	Position  int       `db:"position"`
	ProductID string    `db:"product_id"`
	Title     string    `db:"title"`
	Price     float64   `db:"price"`
	Image     string    `db:"image"`
	Qty       int       `db:"qty"`
}
