package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/sessionservice"
	"github.com/GlebRadaev/mentorhub/pkg/money"
	"github.com/GlebRadaev/mentorhub/pkg/utils"
)

//go:generate mockgen -source=sessions.go -destination=mock_sessions.go -package=sessions

type Service interface {
	CreateMentor(ctx context.Context, name string) (*domain.Mentor, error)
	GetMentor(ctx context.Context, id string) (*domain.Mentor, error)
	CreateSession(ctx context.Context, req sessionservice.CreateSessionRequest) (*domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	StartSession(ctx context.Context, id string) (*domain.Session, error)
	CompleteSession(ctx context.Context, id string) (*domain.Session, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// ListSessions godoc
//
//	@Summary		List sessions open for booking
//	@Tags			Sessions
//	@Produce		json
//	@Success		200	{array}		dto.SessionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions [get]
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.ListSessions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sessions")
		return
	}
	response := make([]dto.SessionResponseDTO, len(sessions))
	for i, s := range sessions {
		response[i] = dto.NewSessionResponse(s)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSession godoc
//
//	@Summary		Get a session
//	@Tags			Sessions
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions/{id} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionResponse(*session))
}

// CreateMentor godoc
//
//	@Summary		Add a mentor
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMentorRequestDTO	true	"Mentor"
//	@Success		201		{object}	dto.MentorResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		422		{object}	utils.Response	"Mentor name is required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/mentors [post]
func (h *SessionHandler) CreateMentor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMentorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	mentor, err := h.sessionService.CreateMentor(r.Context(), req.Name)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewMentorResponse(*mentor))
}

// GetMentor godoc
//
//	@Summary		Get a mentor
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Mentor ID"
//	@Success		200	{object}	dto.MentorResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Mentor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/mentors/{id} [get]
func (h *SessionHandler) GetMentor(w http.ResponseWriter, r *http.Request) {
	mentor, err := h.sessionService.GetMentor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMentorResponse(*mentor))
}

// CreateSession godoc
//
//	@Summary		Schedule a session
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSessionRequestDTO	true	"Session"
//	@Success		201		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Mentor not found"
//	@Failure		422		{object}	utils.Response	"Invalid session"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	fee, err := money.ToMinor(req.SessionFee)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	session, err := h.sessionService.CreateSession(r.Context(), sessionservice.CreateSessionRequest{
		MentorID:    req.MentorID,
		Title:       req.Title,
		SessionFee:  fee,
		Capacity:    req.Capacity,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSessionResponse(*session))
}

// StartSession godoc
//
//	@Summary		Start a session
//	@Description	Close the session for booking and move its confirmed bookings to started
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		422	{object}	utils.Response	"Session is not scheduled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sessions/{id}/start [post]
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.StartSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionResponse(*session))
}

// CompleteSession godoc
//
//	@Summary		Complete a session
//	@Description	Complete started bookings, making their fees payable to the mentor
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		422	{object}	utils.Response	"Session is not active"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sessions/{id}/complete [post]
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.CompleteSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionResponse(*session))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionservice.ErrMentorNotFound),
		errors.Is(err, sessionservice.ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sessionservice.ErrInvalidSession),
		errors.Is(err, sessionservice.ErrInvalidMentor),
		errors.Is(err, sessionservice.ErrMentorInactive),
		errors.Is(err, sessionservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, pg.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
