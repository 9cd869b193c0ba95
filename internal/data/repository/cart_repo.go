package repository

import (
	"context"
	"fmt"

	"shopkart/internal/data/entity"
	"shopkart/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	Replace(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	query := `
		SELECT user_id, position, product_id, title, price, image, qty
		FROM cart_items
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to load cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("load cart for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		err := rows.Scan(
			&item.UserID,
			&item.Position,
			&item.ProductID,
			&item.Title,
			&item.Price,
			&item.Image,
			&item.Qty,
		)
		if err != nil {
			r.log.Error("Failed to scan cart row", zap.Error(err))
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Cart rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return items, nil
}

// Replace swaps the whole cart in one transaction. Last write wins; there is
// no optimistic concurrency token on carts.
func (r *cartRepository) Replace(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cart replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear cart for %s: %w", userID.String(), err)
	}

	insert := `
		INSERT INTO cart_items (user_id, position, product_id, title, price, image, qty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, item := range items {
		_, err := tx.Exec(ctx, insert,
			userID,
			i,
			item.ProductID,
			item.Title,
			item.Price,
			item.Image,
			item.Qty,
		)
		if err != nil {
			r.log.Error("Failed to insert cart item",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.Int("position", i),
			)
			return fmt.Errorf("insert cart item %d for %s: %w", i, userID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cart replace: %w", err)
	}

	return nil
}
