package wallet

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=wallet

import (
	"context"
	"net/http"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/dto"
	"github.com/VictorSmolin/rafflehub/pkg/auth"
	"github.com/VictorSmolin/rafflehub/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve fires and coins balances with lifetime totals for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Fires:       wallet.Fires,
		Coins:       wallet.Coins,
		FiresEarned: wallet.FiresEarned,
		FiresSpent:  wallet.FiresSpent,
		CoinsEarned: wallet.CoinsEarned,
		CoinsSpent:  wallet.CoinsSpent,
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transaction history
//	@Description	Get the wallet ledger for the authenticated user, newest entries first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Type:          tx.Type,
			Currency:      string(tx.Currency),
			Amount:        tx.Amount,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			Description:   tx.Description,
			CreatedAt:     tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
