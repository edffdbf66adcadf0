package reservationservice

//go:generate mockgen -source=reservationservice.go -destination=reservationservice_mock.go -package=reservationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/events"
	"github.com/VictorSmolin/rafflehub/internal/metrics"
	"github.com/VictorSmolin/rafflehub/internal/pg"
)

type RaffleRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.Raffle, error)
}

type TicketRepo interface {
	LockTicket(ctx context.Context, raffleID, idx int) (*domain.Ticket, error)
	Reserve(ctx context.Context, ticketID int, ownerID *int, holdToken string, reservedAt time.Time) error
	Release(ctx context.Context, ticketID int) error
	ReleaseExpired(ctx context.Context, userCutoff, guestCutoff time.Time) ([]domain.ReleasedTicket, error)
}

type Service struct {
	raffleRepo RaffleRepo
	ticketRepo TicketRepo
	txManager  pg.TXManager
	sink       events.Sink
	userTTL    time.Duration
	guestTTL   time.Duration
}

func New(raffleRepo RaffleRepo, ticketRepo TicketRepo, txManager pg.TXManager, sink events.Sink, userTTL, guestTTL time.Duration) *Service {
	return &Service{
		raffleRepo: raffleRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		sink:       sink,
		userTTL:    userTTL,
		guestTTL:   guestTTL,
	}
}

// Expired reports whether a reservation has outlived its hold window.
// Guest holds (no owner) get the much shorter guest TTL.
func (s *Service) Expired(ticket *domain.Ticket, now time.Time) bool {
	if ticket.State != domain.TicketReserved || ticket.ReservedAt == nil {
		return true
	}
	ttl := s.userTTL
	if ticket.OwnerID == nil {
		ttl = s.guestTTL
	}
	return ticket.ReservedAt.Add(ttl).Before(now)
}

// Reserve grants a short-lived hold on one number. userID 0 makes a guest
// hold identified only by the returned token. A reservation held by someone
// else counts as claimable once it has expired (lazy expiry).
func (s *Service) Reserve(ctx context.Context, raffleCode string, idx, userID int) (string, error) {
	holdToken := uuid.NewString()

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByCode(ctx, raffleCode)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		if raffle.Status != domain.RaffleStatusActive {
			return domain.ErrRaffleNotActive
		}

		ticket, err := s.ticketRepo.LockTicket(ctx, raffle.ID, idx)
		if err != nil {
			return err
		}
		if ticket == nil || ticket.State == domain.TicketSold {
			return domain.ErrTicketUnavailable
		}
		if ticket.State == domain.TicketReserved && !s.Expired(ticket, time.Now()) {
			held := ticket.OwnerID != nil && userID != 0 && *ticket.OwnerID == userID
			if !held {
				return domain.ErrTicketUnavailable
			}
		}

		var ownerID *int
		if userID != 0 {
			ownerID = &userID
		}
		return s.ticketRepo.Reserve(ctx, ticket.ID, ownerID, holdToken, time.Now())
	})
	if err != nil {
		metrics.Reservations.WithLabelValues(reservationResult(err)).Inc()
		return "", err
	}

	metrics.Reservations.WithLabelValues(metrics.ResultOK).Inc()
	s.sink.Publish(events.New(events.TicketReserved, raffleCode, map[string]any{
		"idx": idx,
	}))
	return holdToken, nil
}

// Release returns a reserved number to the pool. Idempotent: releasing an
// available number is a no-op. The holder is identified by userID or, for
// guest holds, by the hold token.
func (s *Service) Release(ctx context.Context, raffleCode string, idx, userID int, holdToken string) error {
	released := false

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByCode(ctx, raffleCode)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}

		ticket, err := s.ticketRepo.LockTicket(ctx, raffle.ID, idx)
		if err != nil {
			return err
		}
		if ticket == nil {
			return domain.ErrTicketUnavailable
		}
		switch ticket.State {
		case domain.TicketAvailable:
			return nil
		case domain.TicketSold:
			return domain.ErrTicketUnavailable
		}

		holder := ticket.OwnerID != nil && userID != 0 && *ticket.OwnerID == userID
		tokenMatch := ticket.HoldToken != nil && holdToken != "" && *ticket.HoldToken == holdToken
		if !holder && !tokenMatch && !s.Expired(ticket, time.Now()) {
			return domain.ErrUnauthorized
		}

		released = true
		return s.ticketRepo.Release(ctx, ticket.ID)
	})
	if err != nil {
		return err
	}

	if released {
		s.sink.Publish(events.New(events.TicketReleased, raffleCode, map[string]any{
			"idx": idx,
		}))
	}
	return nil
}

// SweepExpired releases every timed-out reservation and notifies viewers of
// the affected raffles. Invoked periodically by the scheduler.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	now := time.Now()
	released, err := s.ticketRepo.ReleaseExpired(ctx, now.Add(-s.userTTL), now.Add(-s.guestTTL))
	if err != nil {
		zap.L().Error("reservation sweep failed", zap.Error(err))
		return 0, fmt.Errorf("can't sweep expired reservations: %w", err)
	}

	for _, rt := range released {
		s.sink.Publish(events.New(events.TicketReleased, rt.RaffleCode, map[string]any{
			"idx":     rt.Idx,
			"expired": true,
		}))
	}
	if len(released) > 0 {
		zap.L().Info("released expired reservations", zap.Int("count", len(released)))
	}
	return len(released), nil
}

func reservationResult(err error) string {
	switch err {
	case domain.ErrTicketUnavailable, domain.ErrRaffleNotActive:
		return metrics.ResultConflict
	}
	return metrics.ResultError
}
