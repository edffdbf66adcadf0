package purchaseservice

//go:generate mockgen -source=purchaseservice.go -destination=purchaseservice_mock.go -package=purchaseservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/events"
	"github.com/VictorSmolin/rafflehub/internal/metrics"
	"github.com/VictorSmolin/rafflehub/internal/pg"
)

type RaffleRepo interface {
	FindByCodeForUpdate(ctx context.Context, code string) (*domain.Raffle, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Raffle, error)
	UpdatePot(ctx context.Context, raffleID int, potFires, potCoins int64) error
}

type TicketRepo interface {
	LockTickets(ctx context.Context, raffleID int, indices []int) ([]domain.Ticket, error)
	MarkSold(ctx context.Context, raffleID int, indices []int, ownerID int, soldAt time.Time) error
	Reserve(ctx context.Context, ticketID int, ownerID *int, holdToken string, reservedAt time.Time) error
	Release(ctx context.Context, ticketID int) error
	CountByState(ctx context.Context, raffleID int, state string) (int, error)
}

type ParticipantRepo interface {
	Upsert(ctx context.Context, raffleID, userID int, numbers []int, spentFires, spentCoins int64) error
}

type RequestRepo interface {
	Create(ctx context.Context, req *domain.PurchaseRequest) (*domain.PurchaseRequest, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.PurchaseRequest, error)
	FindByRaffleID(ctx context.Context, raffleID int, status string) ([]domain.PurchaseRequest, error)
	UpdateStatus(ctx context.Context, id int, status string, reviewedAt time.Time) error
}

type WalletService interface {
	Debit(ctx context.Context, userID int, currency domain.Currency, amount int64, txType, description string) error
}

type Expirer interface {
	Expired(ticket *domain.Ticket, now time.Time) bool
}

// PurchaseForm is the tagged union of the two settlement shapes: currency
// purchases debit the wallet immediately, prize purchases open a request the
// host must approve. The handler picks the variant from the raffle mode.
type PurchaseForm interface {
	isPurchaseForm()
}

type CurrencyPurchase struct{}

func (CurrencyPurchase) isPurchaseForm() {}

type PrizePurchaseRequest struct {
	Comment string
}

func (PrizePurchaseRequest) isPurchaseForm() {}

// TicketUnavailableError reports exactly which requested indices could not
// be claimed. Unwraps to domain.ErrTicketUnavailable.
type TicketUnavailableError struct {
	Indices []int
}

func (e *TicketUnavailableError) Error() string {
	return fmt.Sprintf("tickets unavailable: %v", e.Indices)
}

func (e *TicketUnavailableError) Unwrap() error {
	return domain.ErrTicketUnavailable
}

// Result describes a settled purchase. Pending is set for prize-mode
// purchases awaiting host review.
type Result struct {
	Numbers   []int
	TotalCost int64
	Currency  domain.Currency
	Pending   bool
	RequestID int
	AllSold   bool
}

type Service struct {
	raffleRepo      RaffleRepo
	ticketRepo      TicketRepo
	participantRepo ParticipantRepo
	requestRepo     RequestRepo
	walletService   WalletService
	reservations    Expirer
	txManager       pg.TXManager
	sink            events.Sink
}

func New(
	raffleRepo RaffleRepo,
	ticketRepo TicketRepo,
	participantRepo ParticipantRepo,
	requestRepo RequestRepo,
	walletService WalletService,
	reservations Expirer,
	txManager pg.TXManager,
	sink events.Sink,
) *Service {
	return &Service{
		raffleRepo:      raffleRepo,
		ticketRepo:      ticketRepo,
		participantRepo: participantRepo,
		requestRepo:     requestRepo,
		walletService:   walletService,
		reservations:    reservations,
		txManager:       txManager,
		sink:            sink,
	}
}

// Purchase settles a multi-number purchase atomically. Lock order is the
// raffle row, then the number rows in ascending index order, then the wallet
// row; every path either commits all of the wallet debit, pot credit,
// ticket transitions and participant update, or none of them.
func (s *Service) Purchase(ctx context.Context, raffleCode string, indices []int, userID int, form PurchaseForm) (*Result, error) {
	start := time.Now()
	indices = normalizeIndices(indices)
	if len(indices) == 0 {
		return nil, fmt.Errorf("no ticket indices requested")
	}

	var result Result
	var mode string

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByCodeForUpdate(ctx, raffleCode)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		mode = raffle.Mode
		if raffle.Status != domain.RaffleStatusActive {
			return domain.ErrRaffleNotActive
		}
		for _, idx := range indices {
			if idx < 1 || idx > raffle.NumbersRange {
				return &TicketUnavailableError{Indices: []int{idx}}
			}
		}

		tickets, err := s.ticketRepo.LockTickets(ctx, raffle.ID, indices)
		if err != nil {
			return err
		}
		if offending := unclaimable(tickets, indices, userID, s.reservations); len(offending) > 0 {
			return &TicketUnavailableError{Indices: offending}
		}

		switch f := form.(type) {
		case CurrencyPurchase:
			return s.settleCurrency(ctx, raffle, indices, userID, &result)
		case PrizePurchaseRequest:
			return s.openPrizeRequest(ctx, raffle, tickets, indices, userID, f.Comment, &result)
		default:
			return fmt.Errorf("unsupported purchase form %T", form)
		}
	})

	metrics.PurchaseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Purchases.WithLabelValues(mode, purchaseResult(err)).Inc()
		return nil, err
	}
	metrics.Purchases.WithLabelValues(mode, metrics.ResultOK).Inc()

	if !result.Pending {
		s.sink.Publish(events.New(events.TicketPurchased, raffleCode, map[string]any{
			"numbers": result.Numbers,
			"user_id": userID,
		}))
	}
	return &result, nil
}

func (s *Service) settleCurrency(ctx context.Context, raffle *domain.Raffle, indices []int, userID int, result *Result) error {
	currency, ok := raffle.Currency()
	if !ok {
		return fmt.Errorf("raffle %s is not currency denominated", raffle.Code)
	}

	total := int64(len(indices)) * raffle.UnitPrice()
	if total > 0 {
		description := fmt.Sprintf("raffle %s: %d ticket(s)", raffle.Code, len(indices))
		if err := s.walletService.Debit(ctx, userID, currency, total, domain.TxTypePurchase, description); err != nil {
			return err
		}
	}

	potFires, potCoins := raffle.PotFires, raffle.PotCoins
	spentFires, spentCoins := int64(0), int64(0)
	if currency == domain.CurrencyCoins {
		potCoins += total
		spentCoins = total
	} else {
		potFires += total
		spentFires = total
	}
	if err := s.raffleRepo.UpdatePot(ctx, raffle.ID, potFires, potCoins); err != nil {
		return err
	}

	if err := s.ticketRepo.MarkSold(ctx, raffle.ID, indices, userID, time.Now()); err != nil {
		return err
	}
	if err := s.participantRepo.Upsert(ctx, raffle.ID, userID, indices, spentFires, spentCoins); err != nil {
		return err
	}

	sold, err := s.ticketRepo.CountByState(ctx, raffle.ID, domain.TicketSold)
	if err != nil {
		return err
	}

	result.Numbers = indices
	result.TotalCost = total
	result.Currency = currency
	result.AllSold = sold == raffle.NumbersRange
	return nil
}

func (s *Service) openPrizeRequest(ctx context.Context, raffle *domain.Raffle, tickets []domain.Ticket, indices []int, userID int, comment string, result *Result) error {
	if raffle.Mode != domain.RaffleModePrize {
		return fmt.Errorf("raffle %s does not accept prize purchase requests", raffle.Code)
	}
	if userID == 0 {
		return domain.ErrUnauthorized
	}

	// Pin the numbers to the requester while the host reviews; the expiry
	// sweep skips reservations backing a pending request.
	now := time.Now()
	for i := range tickets {
		t := &tickets[i]
		if t.State == domain.TicketReserved && t.OwnerID != nil && *t.OwnerID == userID {
			continue
		}
		if err := s.ticketRepo.Reserve(ctx, t.ID, &userID, uuid.NewString(), now); err != nil {
			return err
		}
	}

	req, err := s.requestRepo.Create(ctx, &domain.PurchaseRequest{
		RaffleID:  raffle.ID,
		UserID:    userID,
		Numbers:   indices,
		Status:    domain.RequestPending,
		Comment:   comment,
		CreatedAt: now,
	})
	if err != nil {
		return err
	}

	result.Numbers = indices
	result.Pending = true
	result.RequestID = req.ID
	return nil
}

// Approve finalizes a pending prize purchase request: the reserved numbers
// become sold and the participant aggregate is updated. Host-only.
func (s *Service) Approve(ctx context.Context, requestID, reviewerID int, admin bool) error {
	var raffleCode string
	var req *domain.PurchaseRequest

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.requestRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrRequestNotFound
		}

		raffle, err := s.raffleRepo.FindByIDForUpdate(ctx, req.RaffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		raffleCode = raffle.Code
		if raffle.HostID != reviewerID && !admin {
			return domain.ErrUnauthorized
		}
		if req.Status != domain.RequestPending {
			return domain.ErrRequestNotPending
		}
		if raffle.Status != domain.RaffleStatusActive {
			return domain.ErrRaffleNotActive
		}

		tickets, err := s.ticketRepo.LockTickets(ctx, raffle.ID, req.Numbers)
		if err != nil {
			return err
		}
		var offending []int
		for i := range tickets {
			t := &tickets[i]
			if t.State == domain.TicketSold || (t.State == domain.TicketReserved && (t.OwnerID == nil || *t.OwnerID != req.UserID)) {
				offending = append(offending, t.Idx)
			}
		}
		if len(offending) > 0 {
			return &TicketUnavailableError{Indices: offending}
		}

		if err := s.ticketRepo.MarkSold(ctx, raffle.ID, req.Numbers, req.UserID, time.Now()); err != nil {
			return err
		}
		if err := s.participantRepo.Upsert(ctx, raffle.ID, req.UserID, req.Numbers, 0, 0); err != nil {
			return err
		}
		return s.requestRepo.UpdateStatus(ctx, req.ID, domain.RequestApproved, time.Now())
	})
	if err != nil {
		return err
	}

	s.sink.Publish(events.New(events.TicketPurchased, raffleCode, map[string]any{
		"numbers": req.Numbers,
		"user_id": req.UserID,
	}))
	zap.L().Info("prize purchase request approved",
		zap.Int("request_id", requestID),
		zap.String("raffle", raffleCode),
	)
	return nil
}

// Reject declines a pending prize purchase request and releases the numbers
// back to the pool. Host-only.
func (s *Service) Reject(ctx context.Context, requestID, reviewerID int, admin bool) error {
	var raffleCode string
	var released []int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.requestRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrRequestNotFound
		}

		raffle, err := s.raffleRepo.FindByIDForUpdate(ctx, req.RaffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		raffleCode = raffle.Code
		if raffle.HostID != reviewerID && !admin {
			return domain.ErrUnauthorized
		}
		if req.Status != domain.RequestPending {
			return domain.ErrRequestNotPending
		}

		tickets, err := s.ticketRepo.LockTickets(ctx, raffle.ID, req.Numbers)
		if err != nil {
			return err
		}
		for i := range tickets {
			t := &tickets[i]
			if t.State == domain.TicketReserved && t.OwnerID != nil && *t.OwnerID == req.UserID {
				if err := s.ticketRepo.Release(ctx, t.ID); err != nil {
					return err
				}
				released = append(released, t.Idx)
			}
		}
		return s.requestRepo.UpdateStatus(ctx, req.ID, domain.RequestRejected, time.Now())
	})
	if err != nil {
		return err
	}

	for _, idx := range released {
		s.sink.Publish(events.New(events.TicketReleased, raffleCode, map[string]any{
			"idx": idx,
		}))
	}
	return nil
}

// ListRequests returns a raffle's purchase requests for host review.
func (s *Service) ListRequests(ctx context.Context, raffleCode string, requesterID int, admin bool, status string) ([]domain.PurchaseRequest, error) {
	var requests []domain.PurchaseRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByCodeForUpdate(ctx, raffleCode)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		if raffle.HostID != requesterID && !admin {
			return domain.ErrUnauthorized
		}
		requests, err = s.requestRepo.FindByRaffleID(ctx, raffle.ID, status)
		return err
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// unclaimable returns the indices the buyer cannot take: anything sold,
// reserved by someone else and not expired, or missing from the locked set.
func unclaimable(tickets []domain.Ticket, indices []int, userID int, expirer Expirer) []int {
	now := time.Now()
	found := make(map[int]bool, len(tickets))
	var offending []int

	for i := range tickets {
		t := &tickets[i]
		found[t.Idx] = true
		switch t.State {
		case domain.TicketAvailable:
		case domain.TicketSold:
			offending = append(offending, t.Idx)
		case domain.TicketReserved:
			mine := t.OwnerID != nil && userID != 0 && *t.OwnerID == userID
			if !mine && !expirer.Expired(t, now) {
				offending = append(offending, t.Idx)
			}
		}
	}
	for _, idx := range indices {
		if !found[idx] {
			offending = append(offending, idx)
		}
	}
	sort.Ints(offending)
	return offending
}

func normalizeIndices(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

func purchaseResult(err error) string {
	if errors.Is(err, domain.ErrTicketUnavailable) ||
		errors.Is(err, domain.ErrRaffleNotActive) ||
		errors.Is(err, domain.ErrInsufficientBalance) {
		return metrics.ResultConflict
	}
	return metrics.ResultError
}
