package ticketrepo

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

const ticketColumns = `id, raffle_id, idx, state, owner_id, hold_token, reserved_at, sold_at`

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.ID, &t.RaffleID, &t.Idx, &t.State, &t.OwnerID, &t.HoldToken, &t.ReservedAt, &t.SoldAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateBatch materializes numbers 1..count for a raffle, all available.
// Runs once at raffle creation; nothing may add or remove rows afterwards.
func (r *Repository) CreateBatch(ctx context.Context, raffleID, count int) error {
	query := `
        INSERT INTO raffle_numbers (raffle_id, idx, state)
        SELECT $1, n, $2 FROM generate_series(1, $3) AS n
    `
	_, err := r.db.Exec(ctx, query, raffleID, domain.TicketAvailable, count)
	if err != nil {
		zap.L().Error("can't create ticket batch", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM raffle_numbers WHERE raffle_id = $1 ORDER BY idx ASC`
	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't get tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *Repository) FindSold(ctx context.Context, raffleID int) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM raffle_numbers WHERE raffle_id = $1 AND state = $2 ORDER BY idx ASC`
	rows, err := r.db.Query(ctx, query, raffleID, domain.TicketSold)
	if err != nil {
		zap.L().Error("can't get sold tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *Repository) CountByState(ctx context.Context, raffleID int, state string) (int, error) {
	query := `SELECT COUNT(*) FROM raffle_numbers WHERE raffle_id = $1 AND state = $2`
	var count int
	if err := r.db.QueryRow(ctx, query, raffleID, state).Scan(&count); err != nil {
		zap.L().Error("can't count tickets", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// LockTicket locks a single number row for the ambient transaction.
// Returns nil when the index does not exist in the raffle.
func (r *Repository) LockTicket(ctx context.Context, raffleID, idx int) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM raffle_numbers WHERE raffle_id = $1 AND idx = $2 FOR UPDATE`
	ticket, err := scanTicket(r.db.QueryRow(ctx, query, raffleID, idx))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock ticket", zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

// LockTickets locks a set of number rows in ascending idx order so that
// concurrent transactions touching overlapping sets acquire locks in the
// same order and cannot deadlock.
func (r *Repository) LockTickets(ctx context.Context, raffleID int, indices []int) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM raffle_numbers
        WHERE raffle_id = $1 AND idx = ANY($2)
        ORDER BY idx ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, raffleID, indices)
	if err != nil {
		zap.L().Error("can't lock tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *Repository) Reserve(ctx context.Context, ticketID int, ownerID *int, holdToken string, reservedAt time.Time) error {
	query := `
        UPDATE raffle_numbers
        SET state = $1, owner_id = $2, hold_token = $3, reserved_at = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, domain.TicketReserved, ownerID, holdToken, reservedAt, ticketID)
	if err != nil {
		zap.L().Error("can't reserve ticket", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Release(ctx context.Context, ticketID int) error {
	query := `
        UPDATE raffle_numbers
        SET state = $1, owner_id = NULL, hold_token = NULL, reserved_at = NULL
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.TicketAvailable, ticketID)
	if err != nil {
		zap.L().Error("can't release ticket", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkSold(ctx context.Context, raffleID int, indices []int, ownerID int, soldAt time.Time) error {
	query := `
        UPDATE raffle_numbers
        SET state = $1, owner_id = $2, hold_token = NULL, reserved_at = NULL, sold_at = $3
        WHERE raffle_id = $4 AND idx = ANY($5)
    `
	_, err := r.db.Exec(ctx, query, domain.TicketSold, ownerID, soldAt, raffleID, indices)
	if err != nil {
		zap.L().Error("can't mark tickets sold", zap.Error(err))
		return err
	}
	return nil
}

// ReleaseExpired frees every reservation older than its cutoff. Guest holds
// (owner_id IS NULL) expire on the shorter guest cutoff. Reservations backing
// a pending prize purchase request are kept until the host reviews them.
func (r *Repository) ReleaseExpired(ctx context.Context, userCutoff, guestCutoff time.Time) ([]domain.ReleasedTicket, error) {
	query := `
        UPDATE raffle_numbers rn
        SET state = $1, owner_id = NULL, hold_token = NULL, reserved_at = NULL
        FROM raffles ra
        WHERE rn.raffle_id = ra.id
          AND rn.state = $2
          AND ((rn.owner_id IS NOT NULL AND rn.reserved_at < $3)
            OR (rn.owner_id IS NULL AND rn.reserved_at < $4))
          AND NOT EXISTS (
              SELECT 1 FROM purchase_requests pr
              WHERE pr.raffle_id = rn.raffle_id AND pr.status = 'pending' AND rn.idx = ANY(pr.numbers)
          )
        RETURNING ra.code, rn.idx
    `
	rows, err := r.db.Query(ctx, query, domain.TicketAvailable, domain.TicketReserved, userCutoff, guestCutoff)
	if err != nil {
		zap.L().Error("can't release expired reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var released []domain.ReleasedTicket
	for rows.Next() {
		var rt domain.ReleasedTicket
		if err := rows.Scan(&rt.RaffleCode, &rt.Idx); err != nil {
			zap.L().Error("can't scan released ticket row", zap.Error(err))
			return nil, err
		}
		released = append(released, rt)
	}
	return released, nil
}

// ResetAll returns every number of a raffle to available. Used by
// cancellation after refunds are issued.
func (r *Repository) ResetAll(ctx context.Context, raffleID int) error {
	query := `
        UPDATE raffle_numbers
        SET state = $1, owner_id = NULL, hold_token = NULL, reserved_at = NULL, sold_at = NULL
        WHERE raffle_id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.TicketAvailable, raffleID)
	if err != nil {
		zap.L().Error("can't reset tickets", zap.Error(err))
		return err
	}
	return nil
}

func collectTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, nil
}
