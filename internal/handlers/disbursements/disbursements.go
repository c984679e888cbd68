package disbursements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/disbursementservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
	"github.com/GlebRadaev/mentorhub/pkg/money"
	"github.com/GlebRadaev/mentorhub/pkg/utils"
)

//go:generate mockgen -source=disbursements.go -destination=mock_disbursements.go -package=disbursements

type Service interface {
	PayableBalance(ctx context.Context, mentorID string) (int64, error)
	CreateDisbursement(ctx context.Context, req disbursementservice.Request) (*domain.Disbursement, error)
	GetDisbursements(ctx context.Context, mentorID string) ([]domain.Disbursement, error)
}

type DisbursementHandler struct {
	disbursementService Service
}

func New(disbursementService Service) *DisbursementHandler {
	return &DisbursementHandler{
		disbursementService: disbursementService,
	}
}

// GetPayable godoc
//
//	@Summary		Mentor payable balance
//	@Description	Completed booking fees minus everything already disbursed
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Mentor ID"
//	@Success		200	{object}	dto.PayableResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Mentor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/mentors/{id}/payable [get]
func (h *DisbursementHandler) GetPayable(w http.ResponseWriter, r *http.Request) {
	mentorID := chi.URLParam(r, "id")

	payable, err := h.disbursementService.PayableBalance(r.Context(), mentorID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayableResponseDTO{MentorID: mentorID, Payable: money.Format(payable)})
}

// CreateDisbursement godoc
//
//	@Summary		Record a mentor payout
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Mentor ID"
//	@Param			request	body		dto.CreateDisbursementRequestDTO	true	"Payout"
//	@Success		201		{object}	dto.DisbursementResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Mentor not found"
//	@Failure		409		{object}	utils.Response	"Amount exceeds payable balance"
//	@Failure		422		{object}	utils.Response	"Invalid amount or bookings"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/mentors/{id}/disbursements [post]
func (h *DisbursementHandler) CreateDisbursement(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDisbursementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	disbursement, err := h.disbursementService.CreateDisbursement(r.Context(), disbursementservice.Request{
		MentorID:   chi.URLParam(r, "id"),
		Amount:     amount,
		BookingIDs: req.BookingIDs,
		Note:       req.Note,
		AdminID:    auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDisbursementResponse(*disbursement))
}

// GetDisbursements godoc
//
//	@Summary		Mentor payout history
//	@Description	Newest first
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Mentor ID"
//	@Success		200	{array}		dto.DisbursementResponseDTO
//	@Success		204	"No disbursements"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/mentors/{id}/disbursements [get]
func (h *DisbursementHandler) GetDisbursements(w http.ResponseWriter, r *http.Request) {
	disbursements, err := h.disbursementService.GetDisbursements(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch disbursements")
		return
	}
	if len(disbursements) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	response := make([]dto.DisbursementResponseDTO, len(disbursements))
	for i, d := range disbursements {
		response[i] = dto.NewDisbursementResponse(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, disbursementservice.ErrMentorNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, disbursementservice.ErrAmountExceedsPayable),
		errors.Is(err, pg.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, disbursementservice.ErrInvalidAmount),
		errors.Is(err, disbursementservice.ErrInvalidBooking),
		errors.Is(err, disbursementservice.ErrAmountMismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
