package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OperatorRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
}

type operatorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOperatorRepository(db database.PgxIface, log *zap.Logger) OperatorRepository {
	return &operatorRepository{
		db:  db,
		log: log.With(zap.String("repository", "operator")),
	}
}

func (r *operatorRepository) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM operators
		WHERE email = $1
	`

	var op entity.Operator
	err := r.db.QueryRow(ctx, query, email).Scan(
		&op.ID,
		&op.Email,
		&op.Name,
		&op.PasswordHash,
		&op.CreatedAt,
		&op.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find operator by email", zap.Error(err))
		return nil, fmt.Errorf("find operator by email: %w", err)
	}

	return &op, nil
}

func (r *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM operators
		WHERE id = $1
	`

	var op entity.Operator
	err := r.db.QueryRow(ctx, query, id).Scan(
		&op.ID,
		&op.Email,
		&op.Name,
		&op.PasswordHash,
		&op.CreatedAt,
		&op.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find operator by ID",
			zap.Error(err),
			zap.String("operator_id", id.String()),
		)
		return nil, fmt.Errorf("find operator by ID %s: %w", id.String(), err)
	}

	return &op, nil
}
