package participantrepo

import (
	"context"
	"errors"

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

// Upsert records a purchase for a participant: appends the bought numbers
// and adds the spend. Created on first purchase, updated afterwards.
func (r *Repository) Upsert(ctx context.Context, raffleID, userID int, numbers []int, spentFires, spentCoins int64) error {
	query := `
        INSERT INTO participants (raffle_id, user_id, numbers, spent_fires, spent_coins)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (raffle_id, user_id) DO UPDATE
        SET numbers = participants.numbers || EXCLUDED.numbers,
            spent_fires = participants.spent_fires + EXCLUDED.spent_fires,
            spent_coins = participants.spent_coins + EXCLUDED.spent_coins
    `
	_, err := r.db.Exec(ctx, query, raffleID, userID, numbers, spentFires, spentCoins)
	if err != nil {
		zap.L().Error("can't upsert participant", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Participant, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, spent_fires, spent_coins
        FROM participants
        WHERE raffle_id = $1
        ORDER BY user_id ASC
    `
	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't get participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		var p domain.Participant
		err := rows.Scan(&p.ID, &p.RaffleID, &p.UserID, &p.Numbers, &p.SpentFires, &p.SpentCoins)
		if err != nil {
			zap.L().Error("can't scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

func (r *Repository) FindByRaffleAndUser(ctx context.Context, raffleID, userID int) (*domain.Participant, error) {
	query := `
        SELECT id, raffle_id, user_id, numbers, spent_fires, spent_coins
        FROM participants
        WHERE raffle_id = $1 AND user_id = $2
    `
	var p domain.Participant
	err := r.db.QueryRow(ctx, query, raffleID, userID).Scan(&p.ID, &p.RaffleID, &p.UserID, &p.Numbers, &p.SpentFires, &p.SpentCoins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find participant", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// DeleteByRaffleID clears derived participant aggregates when a raffle is
// cancelled and refunded.
func (r *Repository) DeleteByRaffleID(ctx context.Context, raffleID int) error {
	query := `DELETE FROM participants WHERE raffle_id = $1`
	_, err := r.db.Exec(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't delete participants", zap.Error(err))
		return err
	}
	return nil
}
