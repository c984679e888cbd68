package bookings

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/bookingservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
	"github.com/GlebRadaev/mentorhub/pkg/utils"
)

//go:generate mockgen -source=bookings.go -destination=mock_bookings.go -package=bookings

type Service interface {
	BookSession(ctx context.Context, sessionID, menteeID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID string, asAdmin bool) (*domain.Booking, error)
	GetBookings(ctx context.Context, menteeID string) ([]domain.Booking, error)
	GetSessionBookings(ctx context.Context, sessionID string) ([]domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// BookSession godoc
//
//	@Summary		Book a seat in a session
//	@Description	Debit the session fee from the mentee balance and reserve a seat, all or nothing
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		201	{object}	dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		409	{object}	utils.Response	"Session full or already booked"
//	@Failure		422	{object}	utils.Response	"Session closed for booking"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions/{id}/book [post]
func (h *BookingHandler) BookSession(w http.ResponseWriter, r *http.Request) {
	menteeID := auth.UserIDFromContext(r.Context())

	booking, err := h.bookingService.BookSession(r.Context(), chi.URLParam(r, "id"), menteeID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBookingResponse(*booking))
}

// CancelBooking godoc
//
//	@Summary		Cancel own booking
//	@Description	Cancel a confirmed or started booking, free the seat and refund the fee
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Booking belongs to another mentee"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		422	{object}	utils.Response	"Booking cannot be cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, false)
}

// AdminCancelBooking godoc
//
//	@Summary		Cancel any booking
//	@Description	Cancel a booking on behalf of a mentee, free the seat and refund the fee
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		422	{object}	utils.Response	"Booking cannot be cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bookings/{id}/cancel [post]
func (h *BookingHandler) AdminCancelBooking(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, true)
}

func (h *BookingHandler) cancel(w http.ResponseWriter, r *http.Request, asAdmin bool) {
	actorID := auth.UserIDFromContext(r.Context())

	booking, err := h.bookingService.CancelBooking(r.Context(), chi.URLParam(r, "id"), actorID, asAdmin)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingResponse(*booking))
}

// GetBookings godoc
//
//	@Summary		List own bookings
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Success		204	{object}	utils.Response	"No bookings"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bookings [get]
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.GetBookings(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	if len(bookings) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingsResponse(bookings))
}

// GetSessionBookings godoc
//
//	@Summary		List bookings of a session
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Success		204	{object}	utils.Response	"No bookings"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sessions/{id}/bookings [get]
func (h *BookingHandler) GetSessionBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.GetSessionBookings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	if len(bookings) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingsResponse(bookings))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrSessionNotFound),
		errors.Is(err, bookingservice.ErrBookingNotFound),
		errors.Is(err, bookingservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrSessionFull),
		errors.Is(err, bookingservice.ErrAlreadyBooked),
		errors.Is(err, pg.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, bookingservice.ErrNotBookingOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrSessionClosed),
		errors.Is(err, bookingservice.ErrInvalidStatus),
		errors.Is(err, bookingservice.ErrBalanceOverflow):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
