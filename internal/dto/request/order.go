package request

type PaymentDraft struct {
	Mode  string `json:"mode"`
	UPIID string `json:"upiId"`
}

type AddressDraft struct {
	Name  string `json:"name"`
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
	Phone string `json:"phone"`
}

// OrderDraft is the client's view of the order at checkout. Items may be
// empty; the server then falls back to the stored cart. Total is trusted as
// sent. CreatedAt is unix millis when the client supplies it.
type OrderDraft struct {
	ID        string          `json:"id"`
	Total     float64         `json:"total"`
	Payment   PaymentDraft    `json:"payment"`
	Address   AddressDraft    `json:"address"`
	Items     []CartLineInput `json:"items"`
	CreatedAt int64           `json:"createdAt"`
}

type PlaceOrderRequest struct {
	Order *OrderDraft `json:"order"`
}
