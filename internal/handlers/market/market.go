package market

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/dto"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/internal/service/marketservice"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/utils"
)

type Service interface {
	ListStore(ctx context.Context) ([]domain.Story, error)
	Purchase(ctx context.Context, buyerID, storyID string) (int64, error)
	ListPurchases(ctx context.Context, buyerID string) ([]domain.Purchase, error)
	ListSales(ctx context.Context, authorID string) ([]domain.Sale, error)
}

type MarketHandler struct {
	marketService Service
}

func New(marketService Service) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// ListStore godoc
//
//	@Summary		Browse the story store
//	@Description	List stories published to the public store, newest first
//	@Tags			Store
//	@Produce		json
//	@Success		200	{array}		dto.StoryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/store [get]
func (h *MarketHandler) ListStore(w http.ResponseWriter, r *http.Request) {
	stories, err := h.marketService.ListStore(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch store")
		return
	}

	response := make([]dto.StoryResponseDTO, len(stories))
	for i, s := range stories {
		response[i] = dto.StoryResponseDTO{
			ID:            s.ID,
			Title:         s.Title,
			AuthorName:    s.AuthorName,
			Topic:         s.Topic,
			LengthMinutes: s.LengthMinutes,
			Voice:         s.Voice,
			Music:         s.Music,
			Status:        s.Status,
			Visibility:    s.Visibility,
			Text:          s.Text,
			AudioURL:      s.AudioURL,
			CoverURL:      s.CoverURL,
			Source:        s.Source,
			SalesCount:    s.SalesCount,
			LikesCount:    s.LikesCount,
			CommentsCount: s.CommentsCount,
			CreatedAt:     s.CreatedAt,
			UpdatedAt:     s.UpdatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Purchase a published story
//	@Description	Transfer credits to the author and clone the story into the buyer's library
//	@Tags			Store
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Story id"
//	@Success		200	{object}	dto.PurchaseResponseDTO
//	@Failure		400	{object}	utils.Response	"Story not purchasable"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Not enough credits"
//	@Failure		404	{object}	utils.Response	"Story not found"
//	@Failure		409	{object}	utils.Response	"Already purchased or conflicting purchase"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/store/{id}/purchase [post]
func (h *MarketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	buyerID := r.Context().Value(auth.UserIDKey).(string)
	storyID := chi.URLParam(r, "id")

	remaining, err := h.marketService.Purchase(r.Context(), buyerID, storyID)
	if err != nil {
		switch {
		case errors.Is(err, marketservice.ErrStoryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, marketservice.ErrNotPublic):
			utils.RespondWithError(w, http.StatusBadRequest, "NOT_PUBLIC", err.Error())
		case errors.Is(err, marketservice.ErrNoAuthor):
			utils.RespondWithError(w, http.StatusBadRequest, "NO_AUTHOR", err.Error())
		case errors.Is(err, marketservice.ErrCannotBuyOwnStory):
			utils.RespondWithError(w, http.StatusBadRequest, "CANT_BUY_OWN", err.Error())
		case errors.Is(err, marketservice.ErrAlreadyPurchased):
			utils.RespondWithError(w, http.StatusConflict, "ALREADY_PURCHASED", err.Error())
		case errors.Is(err, marketservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, "INSUFFICIENT_CREDITS", err.Error())
		case errors.Is(err, pg.ErrTxConflict):
			utils.RespondWithError(w, http.StatusConflict, "TX_CONFLICT", "Purchase conflicted with a concurrent update, try again")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		RemainingCredits: remaining,
	})
}

// GetPurchases godoc
//
//	@Summary		Get purchase history
//	@Description	List stories the authenticated user bought from the store, newest first
//	@Tags			Store
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseHistoryDTO	"Purchase history"
//	@Success		204	{object}	utils.Response			"No purchases"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchases [get]
func (h *MarketHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	purchases, err := h.marketService.ListPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch purchases")
		return
	}

	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "NO_PURCHASES", "Purchases not found")
		return
	}

	response := make([]dto.PurchaseHistoryDTO, len(purchases))
	for i, p := range purchases {
		response[i] = dto.PurchaseHistoryDTO{
			StoryID:   p.StoryID,
			Title:     p.Title,
			Price:     p.Price,
			CreatedAt: p.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSales godoc
//
//	@Summary		Get sales history
//	@Description	List sales of the authenticated user's published stories, newest first
//	@Tags			Store
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SaleHistoryDTO	"Sales history"
//	@Success		204	{object}	utils.Response		"No sales"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/sales [get]
func (h *MarketHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	sales, err := h.marketService.ListSales(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch sales")
		return
	}

	if len(sales) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "NO_SALES", "Sales not found")
		return
	}

	response := make([]dto.SaleHistoryDTO, len(sales))
	for i, s := range sales {
		response[i] = dto.SaleHistoryDTO{
			StoryID:   s.StoryID,
			Title:     s.Title,
			Price:     s.Price,
			CreatedAt: s.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
