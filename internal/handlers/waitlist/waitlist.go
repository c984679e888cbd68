package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/service/waitlistservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
	"github.com/GlebRadaev/mentorhub/pkg/utils"
)

//go:generate mockgen -source=waitlist.go -destination=mock_waitlist.go -package=waitlist

type Service interface {
	JoinWaitlist(ctx context.Context, sessionID string, contact waitlistservice.Contact) (*domain.WaitlistEntry, error)
	GetWaitlist(ctx context.Context, sessionID string) ([]domain.WaitlistEntry, error)
}

type WaitlistHandler struct {
	waitlistService Service
}

func New(waitlistService Service) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistService: waitlistService,
	}
}

// JoinWaitlist godoc
//
//	@Summary		Join a session waitlist
//	@Description	Register interest in a session. Signed-in mentees are identified by their token, guests by phone number.
//	@Tags			Waitlist
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Session ID"
//	@Param			request	body		dto.JoinWaitlistRequestDTO	true	"Contact phone"
//	@Success		200		{object}	dto.WaitlistEntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Session not found"
//	@Failure		422		{object}	utils.Response	"Phone number is required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions/{id}/waitlist [post]
func (h *WaitlistHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinWaitlistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	contact := waitlistservice.Contact{
		MenteeID: auth.UserIDFromContext(r.Context()),
		Phone:    req.Phone,
	}
	entry, err := h.waitlistService.JoinWaitlist(r.Context(), chi.URLParam(r, "id"), contact)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWaitlistEntryResponse(*entry))
}

// GetWaitlist godoc
//
//	@Summary		List a session waitlist
//	@Description	Entries in join order
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{array}		dto.WaitlistEntryResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sessions/{id}/waitlist [get]
func (h *WaitlistHandler) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.waitlistService.GetWaitlist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.WaitlistEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.NewWaitlistEntryResponse(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, waitlistservice.ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, waitlistservice.ErrPhoneRequired):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
