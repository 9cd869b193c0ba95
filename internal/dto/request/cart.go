package request

// CartLineInput accepts whatever the client kept locally; sanitization turns
// it into a stored line. Either ProductID or ID may carry the product key.
type CartLineInput struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
}

type ReplaceCartRequest struct {
	Cart *[]CartLineInput `json:"cart"`
}
