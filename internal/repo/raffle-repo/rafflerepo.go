package rafflerepo

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

const raffleColumns = `id, code, host_id, mode, numbers_range, price_fires, price_coins,
        pot_fires, pot_coins, status, draw_mode, scheduled_draw_at,
        winner_id, winner_number, created_at, started_at, ended_at`

func scanRaffle(row pgx.Row) (*domain.Raffle, error) {
	var r domain.Raffle
	err := row.Scan(
		&r.ID, &r.Code, &r.HostID, &r.Mode, &r.NumbersRange,
		&r.PriceFires, &r.PriceCoins, &r.PotFires, &r.PotCoins,
		&r.Status, &r.DrawMode, &r.ScheduledDrawAt,
		&r.WinnerID, &r.WinnerNumber, &r.CreatedAt, &r.StartedAt, &r.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Repository) Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
	query := `
        INSERT INTO raffles (code, host_id, mode, numbers_range, price_fires, price_coins,
                             status, draw_mode, scheduled_draw_at, created_at, started_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + raffleColumns
	created, err := scanRaffle(r.db.QueryRow(ctx, query,
		raffle.Code, raffle.HostID, raffle.Mode, raffle.NumbersRange,
		raffle.PriceFires, raffle.PriceCoins,
		raffle.Status, raffle.DrawMode, raffle.ScheduledDrawAt,
		raffle.CreatedAt, raffle.StartedAt,
	))
	if err != nil {
		zap.L().Error("can't create raffle", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE code = $1`
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

// FindByCodeForUpdate locks the raffle row. The raffle row is always the
// first lock taken by purchase and draw transactions.
func (r *Repository) FindByCodeForUpdate(ctx context.Context, code string) (*domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE code = $1 FOR UPDATE`
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

// FindByIDForUpdate locks a raffle row by primary key. Used when the caller
// holds a reference (e.g. a purchase request) rather than a code.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE id = $1 FOR UPDATE`
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't list raffles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			zap.L().Error("can't scan raffle row", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, *raffle)
	}
	return raffles, nil
}

func (r *Repository) UpdatePot(ctx context.Context, raffleID int, potFires, potCoins int64) error {
	query := `UPDATE raffles SET pot_fires = $1, pot_coins = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, potFires, potCoins, raffleID)
	if err != nil {
		zap.L().Error("failed to update raffle pot", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, raffleID int, status string, endedAt *time.Time) error {
	query := `UPDATE raffles SET status = $1, ended_at = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, status, endedAt, raffleID)
	if err != nil {
		zap.L().Error("failed to update raffle status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetWinner(ctx context.Context, raffleID, winnerID, winnerNumber int, endedAt time.Time) error {
	query := `
        UPDATE raffles
        SET status = $1, winner_id = $2, winner_number = $3, ended_at = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, domain.RaffleStatusFinished, winnerID, winnerNumber, endedAt, raffleID)
	if err != nil {
		zap.L().Error("failed to set raffle winner", zap.Error(err))
		return err
	}
	return nil
}

// FindDueScheduled returns active scheduled raffles whose draw time has passed.
func (r *Repository) FindDueScheduled(ctx context.Context, now time.Time) ([]domain.Raffle, error) {
	query := `
        SELECT ` + raffleColumns + `
        FROM raffles
        WHERE status = $1 AND draw_mode = $2 AND scheduled_draw_at <= $3
        ORDER BY scheduled_draw_at ASC
    `
	rows, err := r.db.Query(ctx, query, domain.RaffleStatusActive, domain.DrawModeScheduled, now)
	if err != nil {
		zap.L().Error("can't get due scheduled raffles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			zap.L().Error("can't scan raffle row", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, *raffle)
	}
	return raffles, nil
}

// FindSoldOutAutomatic returns active automatic raffles with every number sold.
func (r *Repository) FindSoldOutAutomatic(ctx context.Context) ([]domain.Raffle, error) {
	query := `
        SELECT ` + raffleColumns + `
        FROM raffles r
        WHERE status = $1 AND draw_mode = $2
          AND numbers_range = (SELECT COUNT(*) FROM raffle_numbers rn WHERE rn.raffle_id = r.id AND rn.state = $3)
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, domain.RaffleStatusActive, domain.DrawModeAutomatic, domain.TicketSold)
	if err != nil {
		zap.L().Error("can't get sold out raffles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			zap.L().Error("can't scan raffle row", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, *raffle)
	}
	return raffles, nil
}
