package ticketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/VictorSmolin/rafflehub/internal/domain"
)

const selectColumns = `id, raffle_id, idx, state, owner_id, hold_token, reserved_at, sold_at`

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func ticketRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "raffle_id", "idx", "state", "owner_id", "hold_token", "reserved_at", "sold_at"})
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO raffle_numbers (raffle_id, idx, state) SELECT $1, n, $2 FROM generate_series(1, $3) AS n`)

	t.Run("Materializes all numbers", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(7, domain.TicketAvailable, 100).
			WillReturnResult(pgxmock.NewResult("INSERT", 100))

		err := repo.CreateBatch(context.Background(), 7, 100)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(7, domain.TicketAvailable, 100).
			WillReturnError(errors.New("database error"))

		err := repo.CreateBatch(context.Background(), 7, 100)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByRaffleID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM raffle_numbers WHERE raffle_id = $1 ORDER BY idx ASC`)

	ownerID := 2
	rows := ticketRows().
		AddRow(1, 7, 1, domain.TicketAvailable, nil, nil, nil, nil).
		AddRow(2, 7, 2, domain.TicketSold, &ownerID, nil, nil, nil)
	mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

	tickets, err := repo.FindByRaffleID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
	assert.Equal(t, domain.TicketSold, tickets[1].State)
	assert.Equal(t, &ownerID, tickets[1].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindSold(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM raffle_numbers WHERE raffle_id = $1 AND state = $2 ORDER BY idx ASC`)

	ownerID := 2
	rows := ticketRows().
		AddRow(2, 7, 2, domain.TicketSold, &ownerID, nil, nil, nil)
	mock.ExpectQuery(query).WithArgs(7, domain.TicketSold).WillReturnRows(rows)

	tickets, err := repo.FindSold(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, tickets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByState(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM raffle_numbers WHERE raffle_id = $1 AND state = $2`)

	t.Run("Counts sold numbers", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(10)
		mock.ExpectQuery(query).WithArgs(7, domain.TicketSold).WillReturnRows(rows)

		count, err := repo.CountByState(context.Background(), 7, domain.TicketSold)
		assert.NoError(t, err)
		assert.Equal(t, 10, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(7, domain.TicketSold).WillReturnError(errors.New("database error"))

		count, err := repo.CountByState(context.Background(), 7, domain.TicketSold)
		assert.Error(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_LockTicket(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM raffle_numbers WHERE raffle_id = $1 AND idx = $2 FOR UPDATE`)

	t.Run("Locks the number row", func(t *testing.T) {
		rows := ticketRows().AddRow(1, 7, 3, domain.TicketAvailable, nil, nil, nil, nil)
		mock.ExpectQuery(query).WithArgs(7, 3).WillReturnRows(rows)

		ticket, err := repo.LockTicket(context.Background(), 7, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, ticket.Idx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing index returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(7, 999).WillReturnError(pgx.ErrNoRows)

		ticket, err := repo.LockTicket(context.Background(), 7, 999)
		assert.NoError(t, err)
		assert.Nil(t, ticket)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_LockTickets(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM raffle_numbers WHERE raffle_id = $1 AND idx = ANY($2) ORDER BY idx ASC FOR UPDATE`)

	rows := ticketRows().
		AddRow(1, 7, 1, domain.TicketAvailable, nil, nil, nil, nil).
		AddRow(2, 7, 2, domain.TicketAvailable, nil, nil, nil, nil)
	mock.ExpectQuery(query).WithArgs(7, []int{1, 2}).WillReturnRows(rows)

	tickets, err := repo.LockTickets(context.Background(), 7, []int{1, 2})
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reserve(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE raffle_numbers SET state = $1, owner_id = $2, hold_token = $3, reserved_at = $4 WHERE id = $5`)

	now := time.Now()
	ownerID := 2
	mock.ExpectExec(query).
		WithArgs(domain.TicketReserved, &ownerID, "hold-token", now, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Reserve(context.Background(), 1, &ownerID, "hold-token", now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Release(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE raffle_numbers SET state = $1, owner_id = NULL, hold_token = NULL, reserved_at = NULL WHERE id = $2`)

	mock.ExpectExec(query).
		WithArgs(domain.TicketAvailable, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Release(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkSold(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE raffle_numbers SET state = $1, owner_id = $2, hold_token = NULL, reserved_at = NULL, sold_at = $3 WHERE raffle_id = $4 AND idx = ANY($5)`)

	now := time.Now()
	mock.ExpectExec(query).
		WithArgs(domain.TicketSold, 2, now, 7, []int{1, 2, 3}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	err := repo.MarkSold(context.Background(), 7, []int{1, 2, 3}, 2, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReleaseExpired(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE raffle_numbers rn SET state = $1, owner_id = NULL, hold_token = NULL, reserved_at = NULL FROM raffles ra WHERE rn.raffle_id = ra.id AND rn.state = $2 AND ((rn.owner_id IS NOT NULL AND rn.reserved_at < $3) OR (rn.owner_id IS NULL AND rn.reserved_at < $4)) AND NOT EXISTS ( SELECT 1 FROM purchase_requests pr WHERE pr.raffle_id = rn.raffle_id AND pr.status = 'pending' AND rn.idx = ANY(pr.numbers) ) RETURNING ra.code, rn.idx`)

	now := time.Now()
	userCutoff := now.Add(-5 * time.Minute)
	guestCutoff := now.Add(-10 * time.Second)

	t.Run("Returns released codes and indices", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"code", "idx"}).
			AddRow("1A2B3C4D", 3).
			AddRow("FFFFFFFF", 1)
		mock.ExpectQuery(query).
			WithArgs(domain.TicketAvailable, domain.TicketReserved, userCutoff, guestCutoff).
			WillReturnRows(rows)

		released, err := repo.ReleaseExpired(context.Background(), userCutoff, guestCutoff)
		assert.NoError(t, err)
		assert.Len(t, released, 2)
		assert.Equal(t, domain.ReleasedTicket{RaffleCode: "1A2B3C4D", Idx: 3}, released[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(domain.TicketAvailable, domain.TicketReserved, userCutoff, guestCutoff).
			WillReturnError(errors.New("database error"))

		released, err := repo.ReleaseExpired(context.Background(), userCutoff, guestCutoff)
		assert.Error(t, err)
		assert.Nil(t, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ResetAll(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE raffle_numbers SET state = $1, owner_id = NULL, hold_token = NULL, reserved_at = NULL, sold_at = NULL WHERE raffle_id = $2`)

	mock.ExpectExec(query).
		WithArgs(domain.TicketAvailable, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 10))

	err := repo.ResetAll(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
