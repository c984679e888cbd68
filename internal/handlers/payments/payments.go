package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/paymentservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
	"github.com/GlebRadaev/mentorhub/pkg/money"
	"github.com/GlebRadaev/mentorhub/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	SubmitPendingPayment(ctx context.Context, userID, transactionID string, amount int64) (*domain.PendingPayment, error)
	ApprovePendingPayment(ctx context.Context, paymentID, approverID string) (int64, error)
	RejectPendingPayment(ctx context.Context, paymentID, approverID string) error
	GetPendingPayments(ctx context.Context) ([]domain.PendingPayment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// SubmitPayment godoc
//
//	@Summary		Report a bKash top-up
//	@Description	Queue a top-up for admin review. The balance is credited only on approval.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitPaymentRequestDTO	true	"Payment reference and amount"
//	@Success		201		{object}	dto.PendingPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Reference already submitted"
//	@Failure		422		{object}	utils.Response	"Invalid amount or reference"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments [post]
func (h *PaymentHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	payment, err := h.paymentService.SubmitPendingPayment(r.Context(), userID, req.TransactionID, amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPendingPaymentResponse(*payment))
}

// GetPendingPayments godoc
//
//	@Summary		List pending top-ups
//	@Description	Oldest first
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PendingPaymentResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments [get]
func (h *PaymentHandler) GetPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.GetPendingPayments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	response := make([]dto.PendingPaymentResponseDTO, len(payments))
	for i, p := range payments {
		response[i] = dto.NewPendingPaymentResponse(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApprovePayment godoc
//
//	@Summary		Approve a top-up
//	@Description	Credit the mentee and remove the pending payment in one step
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Pending payment ID"
//	@Success		200	{object}	dto.BalanceResponseDTO	"Mentee balance after the credit"
//	@Failure		403	{object}	utils.Response			"Admin access required"
//	@Failure		404	{object}	utils.Response			"Payment or user not found"
//	@Failure		422	{object}	utils.Response			"Balance would overflow"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/payments/{id}/approve [post]
func (h *PaymentHandler) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	approverID := auth.UserIDFromContext(r.Context())

	balance, err := h.paymentService.ApprovePendingPayment(r.Context(), chi.URLParam(r, "id"), approverID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: money.Format(balance)})
}

// RejectPayment godoc
//
//	@Summary		Reject a top-up
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Pending payment ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/{id}/reject [post]
func (h *PaymentHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	approverID := auth.UserIDFromContext(r.Context())

	if err := h.paymentService.RejectPendingPayment(r.Context(), chi.URLParam(r, "id"), approverID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrPaymentNotFound),
		errors.Is(err, paymentservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrDuplicateReference),
		errors.Is(err, pg.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, paymentservice.ErrInvalidAmount),
		errors.Is(err, paymentservice.ErrReferenceRequired),
		errors.Is(err, paymentservice.ErrBalanceOverflow):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
