package raffles

//go:generate mockgen -source=raffles.go -destination=raffles_mock.go -package=raffles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/dto"
	drawservice "github.com/VictorSmolin/rafflehub/internal/service/drawservice"
	purchaseservice "github.com/VictorSmolin/rafflehub/internal/service/purchaseservice"
	raffleservice "github.com/VictorSmolin/rafflehub/internal/service/raffleservice"
	"github.com/VictorSmolin/rafflehub/pkg/auth"
	"github.com/VictorSmolin/rafflehub/pkg/utils"
	"github.com/VictorSmolin/rafflehub/pkg/validate"
)

type RaffleService interface {
	Create(ctx context.Context, hostID int, params raffleservice.CreateParams) (*domain.Raffle, error)
	Get(ctx context.Context, code string) (*domain.Raffle, error)
	List(ctx context.Context, status string) ([]domain.Raffle, error)
	GetTickets(ctx context.Context, code string) ([]domain.Ticket, error)
	GetParticipants(ctx context.Context, code string) ([]domain.Participant, error)
}

type ReservationService interface {
	Reserve(ctx context.Context, raffleCode string, idx, userID int) (string, error)
	Release(ctx context.Context, raffleCode string, idx, userID int, holdToken string) error
	SweepExpired(ctx context.Context) (int, error)
}

type PurchaseService interface {
	Purchase(ctx context.Context, raffleCode string, indices []int, userID int, form purchaseservice.PurchaseForm) (*purchaseservice.Result, error)
	Approve(ctx context.Context, requestID, reviewerID int, admin bool) error
	Reject(ctx context.Context, requestID, reviewerID int, admin bool) error
	ListRequests(ctx context.Context, raffleCode string, requesterID int, admin bool, status string) ([]domain.PurchaseRequest, error)
}

type DrawService interface {
	Draw(ctx context.Context, raffleCode string, actor drawservice.Actor) (*domain.Raffle, error)
	Cancel(ctx context.Context, raffleCode string, actor drawservice.Actor) error
}

type RaffleHandler struct {
	raffleService   RaffleService
	reservations    ReservationService
	purchaseService PurchaseService
	drawService     DrawService
}

func New(raffleService RaffleService, reservations ReservationService, purchaseService PurchaseService, drawService DrawService) *RaffleHandler {
	return &RaffleHandler{
		raffleService:   raffleService,
		reservations:    reservations,
		purchaseService: purchaseService,
		drawService:     drawService,
	}
}

// CreateRaffle godoc
//
//	@Summary		Create a raffle
//	@Description	Open a new raffle hosted by the authenticated user; all numbers are created as available.
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRaffleRequestDTO	true	"Raffle parameters"
//	@Success		200		{object}	dto.RaffleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid raffle parameters"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles [post]
func (h *RaffleHandler) CreateRaffle(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateRaffleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	raffle, err := h.raffleService.Create(r.Context(), userID, raffleservice.CreateParams{
		Mode:            req.Mode,
		NumbersRange:    req.NumbersRange,
		PriceFires:      req.PriceFires,
		PriceCoins:      req.PriceCoins,
		DrawMode:        req.DrawMode,
		ScheduledDrawAt: req.ScheduledDrawAt,
	})
	if err != nil {
		if errors.Is(err, raffleservice.ErrInvalidParams) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// ListRaffles godoc
//
//	@Summary		List raffles
//	@Description	List raffles, optionally filtered by status.
//	@Tags			Raffles
//	@Produce		json
//	@Param			status	query		string	false	"Raffle status filter"	Enums(active, finished, cancelled)
//	@Success		200		{array}		dto.RaffleResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles [get]
func (h *RaffleHandler) ListRaffles(w http.ResponseWriter, r *http.Request) {
	raffles, err := h.raffleService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch raffles")
		return
	}

	response := make([]dto.RaffleResponseDTO, len(raffles))
	for i := range raffles {
		response[i] = toRaffleDTO(&raffles[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRaffle godoc
//
//	@Summary		Get a raffle
//	@Description	Get one raffle by its code.
//	@Tags			Raffles
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Success		200		{object}	dto.RaffleResponseDTO
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		422		{object}	utils.Response	"Invalid raffle code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code} [get]
func (h *RaffleHandler) GetRaffle(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	raffle, err := h.raffleService.Get(r.Context(), code)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// GetTickets godoc
//
//	@Summary		Get the allocation table
//	@Description	Get the state of every number in the raffle.
//	@Tags			Raffles
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Success		200		{array}		dto.TicketResponseDTO
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/numbers [get]
func (h *RaffleHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	tickets, err := h.raffleService.GetTickets(r.Context(), code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.TicketResponseDTO, len(tickets))
	for i, t := range tickets {
		response[i] = dto.TicketResponseDTO{
			Idx:     t.Idx,
			State:   t.State,
			OwnerID: t.OwnerID,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetParticipants godoc
//
//	@Summary		Get raffle participants
//	@Description	Get every participant with their numbers and spend.
//	@Tags			Raffles
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Success		200		{array}		dto.ParticipantResponseDTO
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/participants [get]
func (h *RaffleHandler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	participants, err := h.raffleService.GetParticipants(r.Context(), code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.ParticipantResponseDTO, len(participants))
	for i, p := range participants {
		response[i] = dto.ParticipantResponseDTO{
			UserID:     p.UserID,
			Numbers:    p.Numbers,
			SpentFires: p.SpentFires,
			SpentCoins: p.SpentCoins,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Reserve godoc
//
//	@Summary		Reserve a number
//	@Description	Place a temporary hold on one number. Works for guests too; guest holds expire faster.
//	@Tags			Numbers
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Param			idx		path		int		true	"Number index"
//	@Success		200		{object}	dto.ReserveResponseDTO
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Number not available"
//	@Failure		422		{object}	utils.Response	"Invalid number index"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/numbers/{idx}/reserve [post]
func (h *RaffleHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	idx, ok := ticketIdx(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())

	holdToken, err := h.reservations.Reserve(r.Context(), code, idx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReserveResponseDTO{
		Idx:       idx,
		HoldToken: holdToken,
	})
}

// Release godoc
//
//	@Summary		Release a reserved number
//	@Description	Release a hold placed earlier. Owners release by identity, guests by hold token. Already-released numbers succeed.
//	@Tags			Numbers
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string					true	"Raffle code"
//	@Param			idx		path		int						true	"Number index"
//	@Param			request	body		dto.ReleaseRequestDTO	false	"Hold token for guest holds"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Hold belongs to someone else"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/numbers/{idx}/release [post]
func (h *RaffleHandler) Release(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	idx, ok := ticketIdx(w, r)
	if !ok {
		return
	}
	userID := auth.UserID(r.Context())

	var req dto.ReleaseRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := h.reservations.Release(r.Context(), code, idx, userID, req.HoldToken); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Number released"})
}

// Purchase godoc
//
//	@Summary		Purchase numbers
//	@Description	Settle a purchase of one or more numbers. Currency raffles debit the wallet and credit the pot atomically; prize raffles open a request the host must approve.
//	@Tags			Numbers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string					true	"Raffle code"
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Numbers to purchase"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Numbers not available"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/purchase [post]
func (h *RaffleHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Numbers) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No numbers requested")
		return
	}

	raffle, err := h.raffleService.Get(r.Context(), code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var form purchaseservice.PurchaseForm
	if raffle.Mode == domain.RaffleModePrize {
		form = purchaseservice.PrizePurchaseRequest{Comment: req.Comment}
	} else {
		form = purchaseservice.CurrencyPurchase{}
	}

	result, err := h.purchaseService.Purchase(r.Context(), code, req.Numbers, userID, form)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if result.AllSold && raffle.DrawMode == domain.DrawModeAutomatic {
		// The sale is already committed; a failed draw here is retried by
		// the background sweep.
		if _, err := h.drawService.Draw(r.Context(), code, drawservice.SystemActor); err != nil {
			zap.L().Warn("automatic draw after sell-out failed",
				zap.String("raffle", code),
				zap.Error(err),
			)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Numbers:   result.Numbers,
		TotalCost: result.TotalCost,
		Currency:  string(result.Currency),
		Pending:   result.Pending,
		RequestID: result.RequestID,
	})
}

// Draw godoc
//
//	@Summary		Draw a winner
//	@Description	Pick a winner uniformly over sold numbers and split the pot. Only the host or an admin may draw.
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Success		200		{object}	dto.DrawResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the host"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Raffle not active or no sold numbers"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/draw [post]
func (h *RaffleHandler) Draw(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	actor := actorFromContext(r.Context())

	raffle, err := h.drawService.Draw(r.Context(), code, actor)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResponseDTO{
		Code:         raffle.Code,
		WinnerID:     *raffle.WinnerID,
		WinnerNumber: *raffle.WinnerNumber,
		Status:       raffle.Status,
	})
}

// Cancel godoc
//
//	@Summary		Cancel a raffle
//	@Description	Cancel an active raffle and refund every participant in full. Only the host or an admin may cancel.
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the host"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Raffle not active"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/cancel [post]
func (h *RaffleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	actor := actorFromContext(r.Context())

	if err := h.drawService.Cancel(r.Context(), code, actor); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Raffle cancelled"})
}

// ListRequests godoc
//
//	@Summary		List purchase requests
//	@Description	List prize-mode purchase requests for a raffle. Only the host or an admin may list them.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Raffle code"
//	@Param			status	query		string	false	"Request status filter"	Enums(pending, approved, rejected)
//	@Success		200		{array}		dto.PurchaseRequestResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the host"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{code}/requests [get]
func (h *RaffleHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	code, ok := raffleCode(w, r)
	if !ok {
		return
	}
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.purchaseService.ListRequests(r.Context(), code, userID, auth.IsAdmin(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.PurchaseRequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.PurchaseRequestResponseDTO{
			ID:        req.ID,
			UserID:    req.UserID,
			Numbers:   req.Numbers,
			Status:    req.Status,
			Comment:   req.Comment,
			CreatedAt: req.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveRequest godoc
//
//	@Summary		Approve a purchase request
//	@Description	Approve a pending prize-mode request: its numbers become sold and the buyer joins the participants.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the host"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already reviewed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/approve [post]
func (h *RaffleHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.purchaseService.Approve(r.Context(), requestID, userID, auth.IsAdmin(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request approved"})
}

// RejectRequest godoc
//
//	@Summary		Reject a purchase request
//	@Description	Reject a pending prize-mode request and release its numbers back to available.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the host"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already reviewed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/reject [post]
func (h *RaffleHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.purchaseService.Reject(r.Context(), requestID, userID, auth.IsAdmin(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request rejected"})
}

func toRaffleDTO(raffle *domain.Raffle) dto.RaffleResponseDTO {
	return dto.RaffleResponseDTO{
		Code:            raffle.Code,
		HostID:          raffle.HostID,
		Mode:            raffle.Mode,
		NumbersRange:    raffle.NumbersRange,
		PriceFires:      raffle.PriceFires,
		PriceCoins:      raffle.PriceCoins,
		PotFires:        raffle.PotFires,
		PotCoins:        raffle.PotCoins,
		Status:          raffle.Status,
		DrawMode:        raffle.DrawMode,
		ScheduledDrawAt: raffle.ScheduledDrawAt,
		WinnerID:        raffle.WinnerID,
		WinnerNumber:    raffle.WinnerNumber,
		CreatedAt:       raffle.CreatedAt,
		EndedAt:         raffle.EndedAt,
	}
}

func actorFromContext(ctx context.Context) drawservice.Actor {
	return drawservice.Actor{
		ID:    ctx.Value(auth.UserIDKey).(int),
		Admin: auth.IsAdmin(ctx),
	}
}

func raffleCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	code := chi.URLParam(r, "code")
	if !validate.IsRaffleCode(code) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid raffle code")
		return "", false
	}
	return code, true
}

func ticketIdx(w http.ResponseWriter, r *http.Request) (int, bool) {
	return pathInt(w, r, "idx")
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v < 1 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid "+name)
		return 0, false
	}
	return v, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRaffleNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Raffle not found")
	case errors.Is(err, domain.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrTicketUnavailable),
		errors.Is(err, domain.ErrRaffleNotActive),
		errors.Is(err, domain.ErrNoSoldTickets),
		errors.Is(err, domain.ErrRequestNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
