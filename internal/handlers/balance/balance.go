package balance

import (
	"context"
	"errors"
	"net/http"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/dto"
	"github.com/nightfable/nightfable/internal/service/balanceservice"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the authenticated user's current credit balance.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current credits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	credits, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Credits: credits,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the authenticated user's credit transaction log, newest first
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	entries, err := h.balanceService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch transactions")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "NO_TRANSACTIONS", "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.TransactionResponseDTO{
			Type:      e.Type,
			Amount:    e.Amount,
			StoryID:   e.StoryID,
			Title:     e.Title,
			CreatedAt: e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
