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

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *entity.Itinerary) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)
	FindByUserEmail(ctx context.Context, email string) ([]*entity.Itinerary, error)
}

type itineraryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItineraryRepository(db database.PgxIface, log *zap.Logger) ItineraryRepository {
	return &itineraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "itinerary")),
	}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	query := `
		INSERT INTO itineraries (id, user_email, user_selection, trip_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		itinerary.ID,
		itinerary.UserEmail,
		itinerary.UserSelection,
		itinerary.TripData,
		itinerary.CreatedAt,
		itinerary.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create itinerary",
			zap.Error(err),
			zap.String("user_email", itinerary.UserEmail),
		)
		return fmt.Errorf("create itinerary: %w", err)
	}

	return nil
}

func (r *itineraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	query := `
		SELECT id, user_email, user_selection, trip_data, created_at, updated_at
		FROM itineraries
		WHERE id = $1
	`

	var it entity.Itinerary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID,
		&it.UserEmail,
		&it.UserSelection,
		&it.TripData,
		&it.CreatedAt,
		&it.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find itinerary by ID",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find itinerary by ID %s: %w", id.String(), err)
	}

	return &it, nil
}

func (r *itineraryRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Itinerary, error) {
	query := `
		SELECT id, user_email, user_selection, trip_data, created_at, updated_at
		FROM itineraries
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find itineraries by user",
			zap.Error(err),
			zap.String("user_email", email),
		)
		return nil, fmt.Errorf("find itineraries by user %s: %w", email, err)
	}
	defer rows.Close()

	var itineraries []*entity.Itinerary
	for rows.Next() {
		var it entity.Itinerary
		err := rows.Scan(
			&it.ID,
			&it.UserEmail,
			&it.UserSelection,
			&it.TripData,
			&it.CreatedAt,
			&it.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan itinerary row: %w", err)
		}
		itineraries = append(itineraries, &it)
	}

	return itineraries, rows.Err()
}
