package response

import (
	"time"

	"shopkart/internal/data/entity"
)

type PaymentResponse struct {
	Mode  string  `json:"mode"`
	UPIID *string `json:"upiId"`
}

type AddressResponse struct {
	Name  string `json:"name"`
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
	Phone string `json:"phone"`
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Total     float64             `json:"total"`
	Payment   PaymentResponse     `json:"payment"`
	Address   AddressResponse     `json:"address"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ItemID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Image:     item.Image,
			Qty:       item.Qty,
		})
	}

	return OrderResponse{
		ID:        order.Code,
		Total:     order.Total,
		Payment:   PaymentResponse{Mode: string(order.Mode), UPIID: order.UPIID},
		Address: AddressResponse{
			Name:  order.Address.Name,
			Line1: order.Address.Line1,
			City:  order.Address.City,
			State: order.Address.State,
			Zip:   order.Address.Zip,
			Phone: order.Address.Phone,
		},
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderToResponse(order))
	}
	return out
}
