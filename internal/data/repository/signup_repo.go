package repository

import (
	"context"
	"fmt"

	"shopkart/internal/data/entity"
	"shopkart/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SignupRepository interface {
	Create(ctx context.Context, token *entity.SignupToken) error
	FindByEmail(ctx context.Context, email string) (*entity.SignupToken, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type signupRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSignupRepository(db database.PgxIface, log *zap.Logger) SignupRepository {
	return &signupRepository{
		db:  db,
		log: log.With(zap.String("repository", "signup")),
	}
}

func (r *signupRepository) Create(ctx context.Context, token *entity.SignupToken) error {
	query := `
		INSERT INTO signup_tokens (id, email, name, password, otp_code,
		                           expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.Email,
		token.Name,
		token.PasswordHash,
		token.OTPCode,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create signup token",
			zap.Error(err),
			zap.String("email", token.Email),
		)
		return fmt.Errorf("create signup token for %s: %w", token.Email, err)
	}

	return nil
}

// FindByEmail returns the most recent pending token for the email, expired or
// not. Expiry is the service's call to make, because detecting it has side
// effects (the tokens get deleted).
func (r *signupRepository) FindByEmail(ctx context.Context, email string) (*entity.SignupToken, error) {
	query := `
		SELECT id, email, name, password, otp_code, expires_at, created_at
		FROM signup_tokens
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var token entity.SignupToken
	err := r.db.QueryRow(ctx, query, email).Scan(
		&token.ID,
		&token.Email,
		&token.Name,
		&token.PasswordHash,
		&token.OTPCode,
		&token.ExpiresAt,
		&token.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find signup token",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find signup token for %s: %w", email, err)
	}

	return &token, nil
}

func (r *signupRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM signup_tokens WHERE email = $1`

	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete signup tokens",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete signup tokens for %s: %w", email, err)
	}

	return nil
}

// DeleteExpired removes tokens past their expiry; called by the background
// sweeper so abandoned signups do not accumulate.
func (r *signupRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM signup_tokens WHERE expires_at < NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to delete expired signup tokens", zap.Error(err))
		return 0, fmt.Errorf("delete expired signup tokens: %w", err)
	}

	return result.RowsAffected(), nil
}
