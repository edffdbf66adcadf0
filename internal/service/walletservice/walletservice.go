package walletservice

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, wallet *domain.Wallet) error
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type Service struct {
	walletRepo WalletRepo
}

func New(walletRepo WalletRepo) *Service {
	return &Service{walletRepo: walletRepo}
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.CreateWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	txs, err := s.walletRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Debit takes amount from the user's wallet and appends a ledger row.
// It joins the caller's ambient transaction: the wallet row is locked for
// the rest of that transaction, so the balance check cannot race another
// debit. Fails with domain.ErrInsufficientBalance without mutating anything.
func (s *Service) Debit(ctx context.Context, userID int, currency domain.Currency, amount int64, txType, description string) error {
	if amount <= 0 {
		return fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return fmt.Errorf("wallet not found for user %d", userID)
	}

	before := wallet.Balance(currency)
	if before < amount {
		return domain.ErrInsufficientBalance
	}

	switch currency {
	case domain.CurrencyCoins:
		wallet.Coins -= amount
		wallet.CoinsSpent += amount
	default:
		wallet.Fires -= amount
		wallet.FiresSpent += amount
	}

	if err := s.walletRepo.UpdateWallet(ctx, wallet); err != nil {
		return err
	}

	return s.walletRepo.CreateTransaction(ctx, &domain.WalletTransaction{
		UserID:        userID,
		Type:          txType,
		Currency:      currency,
		Amount:        -amount,
		BalanceBefore: before,
		BalanceAfter:  before - amount,
		Description:   description,
		CreatedAt:     time.Now(),
	})
}

// Credit adds amount to the user's wallet and appends a ledger row, inside
// the caller's ambient transaction.
func (s *Service) Credit(ctx context.Context, userID int, currency domain.Currency, amount int64, txType, description string) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return fmt.Errorf("wallet not found for user %d", userID)
	}

	before := wallet.Balance(currency)
	switch currency {
	case domain.CurrencyCoins:
		wallet.Coins += amount
		wallet.CoinsEarned += amount
	default:
		wallet.Fires += amount
		wallet.FiresEarned += amount
	}

	if err := s.walletRepo.UpdateWallet(ctx, wallet); err != nil {
		return err
	}

	return s.walletRepo.CreateTransaction(ctx, &domain.WalletTransaction{
		UserID:        userID,
		Type:          txType,
		Currency:      currency,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  before + amount,
		Description:   description,
		CreatedAt:     time.Now(),
	})
}
