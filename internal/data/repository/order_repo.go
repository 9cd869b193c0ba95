package repository

import (
	"context"
	"fmt"

	"shopkart/internal/data/entity"
	"shopkart/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	CreateAndClearCart(ctx context.Context, order *entity.Order) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindByCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// CreateAndClearCart writes the order, its items, and the cart clear in a
// single transaction. A client must never observe the order without the empty
// cart or the other way around.
func (r *orderRepository) CreateAndClearCart(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin place order: %w", err)
	}
	defer tx.Rollback(ctx)

	insertOrder := `
		INSERT INTO orders (id, user_id, code, total, payment_mode, upi_id,
		                    ship_name, ship_line1, ship_city, ship_state,
		                    ship_zip, ship_phone, created_at, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = tx.Exec(ctx, insertOrder,
		order.ID,
		order.UserID,
		order.Code,
		order.Total,
		order.Mode,
		order.UPIID,
		order.Address.Name,
		order.Address.Line1,
		order.Address.City,
		order.Address.State,
		order.Address.Zip,
		order.Address.Phone,
		order.CreatedAt,
		order.PlacedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
			zap.String("code", order.Code),
		)
		return fmt.Errorf("insert order %s: %w", order.Code, err)
	}

	insertItem := `
		INSERT INTO order_items (order_id, position, item_id, product_id,
		                         title, price, image, qty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for i, item := range order.Items {
		_, err := tx.Exec(ctx, insertItem,
			order.ID,
			i,
			item.ItemID,
			item.ProductID,
			item.Title,
			item.Price,
			item.Image,
			item.Qty,
		)
		if err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.String("code", order.Code),
				zap.Int("position", i),
			)
			return fmt.Errorf("insert order item %d for %s: %w", i, order.Code, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, order.UserID); err != nil {
		r.log.Error("Failed to clear cart after order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("clear cart for %s: %w", order.UserID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit place order: %w", err)
	}

	return nil
}

// FindByUser returns the user's orders newest-first by insertion, items
// included. Sorting on placed_at rather than created_at keeps a backdated
// client timestamp from reshuffling the history.
func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, code, total, payment_mode, upi_id,
		       ship_name, ship_line1, ship_city, ship_state,
		       ship_zip, ship_phone, created_at, placed_at
		FROM orders
		WHERE user_id = $1
		ORDER BY placed_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to load orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("load orders for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := scanOrder(rows, &order); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Order rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for _, order := range orders {
		items, err := r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

func (r *orderRepository) FindByCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, code, total, payment_mode, upi_id,
		       ship_name, ship_line1, ship_city, ship_state,
		       ship_zip, ship_phone, created_at, placed_at
		FROM orders
		WHERE user_id = $1 AND code = $2
		ORDER BY placed_at DESC
		LIMIT 1
	`

	var order entity.Order
	row := r.db.QueryRow(ctx, query, userID, code)
	if err := scanOrder(row, &order); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find order by code",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find order %s: %w", code, err)
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	query := `
		SELECT order_id, position, item_id, product_id, title, price, image, qty
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to load order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("load order items for %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.OrderID,
			&item.Position,
			&item.ItemID,
			&item.ProductID,
			&item.Title,
			&item.Price,
			&item.Image,
			&item.Qty,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}

// scanOrder works for both pgx.Row and pgx.Rows.
func scanOrder(row pgx.Row, order *entity.Order) error {
	return row.Scan(
		&order.ID,
		&order.UserID,
		&order.Code,
		&order.Total,
		&order.Mode,
		&order.UPIID,
		&order.Address.Name,
		&order.Address.Line1,
		&order.Address.City,
		&order.Address.State,
		&order.Address.Zip,
		&order.Address.Phone,
		&order.CreatedAt,
		&order.PlacedAt,
	)
}
