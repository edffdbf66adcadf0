package dto

import "time"

type WalletResponseDTO struct {
	Fires       int64 `json:"fires" example:"500"`
	Coins       int64 `json:"coins" example:"120"`
	FiresEarned int64 `json:"fires_earned" example:"700"`
	FiresSpent  int64 `json:"fires_spent" example:"200"`
	CoinsEarned int64 `json:"coins_earned" example:"120"`
	CoinsSpent  int64 `json:"coins_spent" example:"0"`
}

type TransactionResponseDTO struct {
	Type          string    `json:"type" example:"purchase"`
	Currency      string    `json:"currency" example:"fires"`
	Amount        int64     `json:"amount" example:"-15"`
	BalanceBefore int64     `json:"balance_before" example:"20"`
	BalanceAfter  int64     `json:"balance_after" example:"5"`
	Description   string    `json:"description" example:"raffle 1A2B3C4D: 3 ticket(s)"`
	CreatedAt     time.Time `json:"created_at" example:"2025-07-09T16:09:57+03:00"`
}
