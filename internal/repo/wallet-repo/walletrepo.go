package walletrepo

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

func (r *Repository) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Fires, &w.Coins, &w.FiresEarned, &w.FiresSpent, &w.CoinsEarned, &w.CoinsSpent)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, fires, coins, fires_earned, fires_spent, coins_earned, coins_spent
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetWalletForUpdate locks the wallet row for the rest of the ambient
// transaction. Callers must run inside TXManager.Begin.
func (r *Repository) GetWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, fires, coins, fires_earned, fires_spent, coins_earned, coins_spent
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        RETURNING id, user_id, fires, coins, fires_earned, fires_spent, coins_earned, coins_spent
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) UpdateWallet(ctx context.Context, wallet *domain.Wallet) error {
	query := `
        UPDATE wallets
        SET fires = $1, coins = $2, fires_earned = $3, fires_spent = $4, coins_earned = $5, coins_spent = $6
        WHERE user_id = $7
    `
	_, err := r.db.Exec(ctx, query,
		wallet.Fires, wallet.Coins,
		wallet.FiresEarned, wallet.FiresSpent,
		wallet.CoinsEarned, wallet.CoinsSpent,
		wallet.UserID,
	)
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	query := `
        INSERT INTO wallet_transactions (user_id, type, currency, amount, balance_before, balance_after, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		tx.UserID, tx.Type, string(tx.Currency), tx.Amount,
		tx.BalanceBefore, tx.BalanceAfter, tx.Description, tx.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to append wallet transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, user_id, type, currency, amount, balance_before, balance_after, description, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Currency, &tx.Amount, &tx.BalanceBefore, &tx.BalanceAfter, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
