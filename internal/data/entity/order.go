package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	PaymentModeCOD PaymentMode = "COD"
	PaymentModeUPI PaymentMode = "UPI"
)

// Address is free text, minimally validated.
type Address struct {
	Name  string `db:"ship_name"`
	Line1 string `db:"ship_line1"`
	City  string `db:"ship_city"`
	State string `db:"ship_state"`
	Zip   string `db:"ship_zip"`
	Phone string `db:"ship_phone"`
}

// Order is immutable once created. Code is the client-visible order id
// (e.g. SK-1717171717171); Total is trusted from the caller at placement.
// CreatedAt may come from the client; PlacedAt is always server-set and is
// what order history sorts on.
type Order struct {
	BaseSimple
	UserID   uuid.UUID   `db:"user_id"`
	Code     string      `db:"code"`
	Total    float64     `db:"total"`
	Mode     PaymentMode `db:"payment_mode"`
	UPIID    *string     `db:"upi_id"`
	PlacedAt time.Time   `db:"placed_at"`
	Address  Address
	Items    []OrderItem
}

// OrderItem keeps both the client-supplied id and the normalized product id
// so nothing from the draft is lost.
type OrderItem struct {
	OrderID   uuid.UUID `db:"order_id"`
	Position  int       `db:"position"`
	ItemID    string    `db:"item_id"`
	ProductID string    `db:"product_id"`
	Title     string    `db:"title"`
	Price     float64   `db:"price"`
	Image     string    `db:"image"`
	Qty       int       `db:"qty"`
}
