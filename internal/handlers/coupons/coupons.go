package coupons

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/couponservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
	"github.com/GlebRadaev/mentorhub/pkg/money"
	"github.com/GlebRadaev/mentorhub/pkg/utils"
)

//go:generate mockgen -source=coupons.go -destination=mock_coupons.go -package=coupons

type Service interface {
	CreateCoupon(ctx context.Context, code string, amount int64, expiresAt time.Time) (*domain.Coupon, error)
	RedeemCoupon(ctx context.Context, code, userID string) (int64, error)
}

type CouponHandler struct {
	couponService Service
}

func New(couponService Service) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// RedeemCoupon godoc
//
//	@Summary		Redeem a coupon
//	@Description	Credit the coupon amount to the authenticated mentee. Each coupon can be redeemed once.
//	@Tags			Coupons
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemCouponRequestDTO	true	"Coupon code"
//	@Success		200		{object}	dto.RedeemCouponResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Coupon not found"
//	@Failure		409		{object}	utils.Response	"Coupon expired or already used"
//	@Failure		422		{object}	utils.Response	"Balance would overflow"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/coupons/redeem [post]
func (h *CouponHandler) RedeemCoupon(w http.ResponseWriter, r *http.Request) {
	var req dto.RedeemCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	credited, err := h.couponService.RedeemCoupon(r.Context(), req.Code, auth.UserIDFromContext(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemCouponResponseDTO{Credited: money.Format(credited)})
}

// CreateCoupon godoc
//
//	@Summary		Issue a coupon
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCouponRequestDTO	true	"Coupon"
//	@Success		201		{object}	dto.CouponResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		409		{object}	utils.Response	"Coupon code already exists"
//	@Failure		422		{object}	utils.Response	"Invalid coupon"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/coupons [post]
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	coupon, err := h.couponService.CreateCoupon(r.Context(), req.Code, amount, req.ExpiresAt)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCouponResponse(*coupon))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, couponservice.ErrCouponNotFound),
		errors.Is(err, couponservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, couponservice.ErrCouponExpired),
		errors.Is(err, couponservice.ErrCouponAlreadyUsed),
		errors.Is(err, couponservice.ErrCouponExists),
		errors.Is(err, pg.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, couponservice.ErrInvalidCoupon),
		errors.Is(err, couponservice.ErrBalanceOverflow):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
