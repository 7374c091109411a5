package stories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/dto"
	"github.com/nightfable/nightfable/internal/service/storyservice"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/utils"
)

type Service interface {
	Generate(ctx context.Context, userID string, in storyservice.GenerateInput) (string, int64, error)
	Get(ctx context.Context, ownerID, storyID string) (*domain.Story, error)
	List(ctx context.Context, ownerID string) ([]domain.Story, error)
	SetVisibility(ctx context.Context, ownerID, storyID, visibility string) error
}

type StoryHandler struct {
	storyService Service
}

func New(storyService Service) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
	}
}

// Generate godoc
//
//	@Summary		Request a new story
//	@Description	Debit credits and queue generation of a bedtime story. Content fields stay empty until fulfillment finishes.
//	@Tags			Stories
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GenerateStoryRequestDTO	true	"Story request payload"
//	@Success		200		{object}	dto.GenerateStoryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Not enough credits"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/stories [post]
func (h *StoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.GenerateStoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}

	storyID, remaining, err := h.storyService.Generate(r.Context(), userID, storyservice.GenerateInput{
		Title:     req.Title,
		Direction: req.Prompt,
		Topic:     req.Options.Topic,
		LengthMin: req.Options.LengthMin,
		Voice:     req.Options.Voice,
		Music:     req.Options.Music,
	})
	if err != nil {
		switch {
		case errors.Is(err, storyservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
		case errors.Is(err, storyservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, "INSUFFICIENT_CREDITS", err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.GenerateStoryResponseDTO{
		StoryID:          storyID,
		RemainingCredits: remaining,
	})
}

// List godoc
//
//	@Summary		List own stories
//	@Description	Get the authenticated user's library, generated and purchased, newest first
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.StoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/stories [get]
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	stories, err := h.storyService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch stories")
		return
	}

	response := make([]dto.StoryResponseDTO, len(stories))
	for i, s := range stories {
		response[i] = toStoryDTO(&s)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get one own story
//	@Description	Get a single story from the authenticated user's library by id
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Story id"
//	@Success		200	{object}	dto.StoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Story not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/stories/{id} [get]
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	storyID := chi.URLParam(r, "id")

	story, err := h.storyService.Get(r.Context(), userID, storyID)
	if err != nil {
		if errors.Is(err, storyservice.ErrStoryNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStoryDTO(story))
}

// Publish godoc
//
//	@Summary		Toggle story visibility
//	@Description	Make an owned story public in the store, or private again
//	@Tags			Stories
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Story id"
//	@Param			request	body		dto.PublishStoryRequestDTO	true	"Target visibility"
//	@Success		200		{string}	string						"Visibility updated"
//	@Failure		400		{object}	utils.Response				"Invalid visibility"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Story not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/stories/{id}/publish [post]
func (h *StoryHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	storyID := chi.URLParam(r, "id")

	var req dto.PublishStoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}

	err := h.storyService.SetVisibility(r.Context(), userID, storyID, req.Visibility)
	if err != nil {
		switch {
		case errors.Is(err, storyservice.ErrInvalidVisibility):
			utils.RespondWithError(w, http.StatusBadRequest, "INVALID_VISIBILITY", err.Error())
		case errors.Is(err, storyservice.ErrStoryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "visibility updated")
}

func toStoryDTO(s *domain.Story) dto.StoryResponseDTO {
	return dto.StoryResponseDTO{
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
