package requestrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const requestColumns = `id, raffle_id, user_id, numbers, status, comment, created_at, reviewed_at`

func scanRequest(row pgx.Row) (*domain.PurchaseRequest, error) {
	var pr domain.PurchaseRequest
	err := row.Scan(&pr.ID, &pr.RaffleID, &pr.UserID, &pr.Numbers, &pr.Status, &pr.Comment, &pr.CreatedAt, &pr.ReviewedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.PurchaseRequest) (*domain.PurchaseRequest, error) {
	query := `
        INSERT INTO purchase_requests (raffle_id, user_id, numbers, status, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + requestColumns
	created, err := scanRequest(r.db.QueryRow(ctx, query,
		req.RaffleID, req.UserID, req.Numbers, req.Status, req.Comment, req.CreatedAt,
	))
	if err != nil {
		zap.L().Error("can't create purchase request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// FindByIDForUpdate locks the request row so concurrent approve/reject
// reviews serialize.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.PurchaseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM purchase_requests WHERE id = $1 FOR UPDATE`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock purchase request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindByRaffleID(ctx context.Context, raffleID int, status string) ([]domain.PurchaseRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM purchase_requests
        WHERE raffle_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, raffleID, status)
	if err != nil {
		zap.L().Error("can't get purchase requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PurchaseRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan purchase request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, reviewedAt time.Time) error {
	query := `UPDATE purchase_requests SET status = $1, reviewed_at = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, status, reviewedAt, id)
	if err != nil {
		zap.L().Error("can't update purchase request", zap.Error(err))
		return err
	}
	return nil
}
