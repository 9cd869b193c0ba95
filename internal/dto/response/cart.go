package response

import "shopkart/internal/data/entity"

type CartLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
}

func CartToResponse(items []entity.CartItem) []CartLine {
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Image:     item.Image,
			Qty:       item.Qty,
		})
	}
	return lines
}
