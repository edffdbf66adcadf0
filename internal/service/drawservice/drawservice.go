package drawservice

//go:generate mockgen -source=drawservice.go -destination=drawservice_mock.go -package=drawservice

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/events"
	"github.com/VictorSmolin/rafflehub/internal/metrics"
	"github.com/VictorSmolin/rafflehub/internal/pg"
)

// Pot split: fixed shares of the pot at draw time. Integer floor division;
// the platform takes the remainder, so the sum of credits always equals the
// pot and never exceeds it.
const (
	winnerSharePct = 70
	hostSharePct   = 20
)

type RaffleRepo interface {
	FindByCodeForUpdate(ctx context.Context, code string) (*domain.Raffle, error)
	SetWinner(ctx context.Context, raffleID, winnerID, winnerNumber int, endedAt time.Time) error
	UpdateStatus(ctx context.Context, raffleID int, status string, endedAt *time.Time) error
	UpdatePot(ctx context.Context, raffleID int, potFires, potCoins int64) error
}

type TicketRepo interface {
	FindSold(ctx context.Context, raffleID int) ([]domain.Ticket, error)
	ResetAll(ctx context.Context, raffleID int) error
}

type ParticipantRepo interface {
	FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Participant, error)
	DeleteByRaffleID(ctx context.Context, raffleID int) error
}

type WalletService interface {
	Credit(ctx context.Context, userID int, currency domain.Currency, amount int64, txType, description string) error
}

// Actor identifies who triggers a draw or cancellation. The scheduler acts
// as System; HTTP callers carry their user id and admin flag.
type Actor struct {
	ID     int
	Admin  bool
	System bool
}

var SystemActor = Actor{System: true}

type Service struct {
	raffleRepo      RaffleRepo
	ticketRepo      TicketRepo
	participantRepo ParticipantRepo
	walletService   WalletService
	txManager       pg.TXManager
	sink            events.Sink
	platformUserID  int
	randIntn        func(n int) int
}

func New(
	raffleRepo RaffleRepo,
	ticketRepo TicketRepo,
	participantRepo ParticipantRepo,
	walletService WalletService,
	txManager pg.TXManager,
	sink events.Sink,
	platformUserID int,
) *Service {
	return &Service{
		raffleRepo:      raffleRepo,
		ticketRepo:      ticketRepo,
		participantRepo: participantRepo,
		walletService:   walletService,
		txManager:       txManager,
		sink:            sink,
		platformUserID:  platformUserID,
		randIntn:        cryptoIntn,
	}
}

func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the platform's entropy source is broken.
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

// Draw selects one winning ticket uniformly at random among all sold tickets
// (per ticket, not per participant) and distributes the pot in the same
// transaction as the status transition. Manual draws are host/admin only;
// the scheduler triggers scheduled and automatic draws as SystemActor.
func (s *Service) Draw(ctx context.Context, raffleCode string, actor Actor) (*domain.Raffle, error) {
	var raffle *domain.Raffle
	var winner domain.Ticket

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		raffle, err = s.raffleRepo.FindByCodeForUpdate(ctx, raffleCode)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		if raffle.Status != domain.RaffleStatusActive {
			return domain.ErrRaffleNotActive
		}
		if !s.mayDraw(raffle, actor) {
			return domain.ErrUnauthorized
		}

		sold, err := s.ticketRepo.FindSold(ctx, raffle.ID)
		if err != nil {
			return err
		}
		if len(sold) == 0 {
			return domain.ErrNoSoldTickets
		}

		winner = sold[s.randIntn(len(sold))]
		if winner.OwnerID == nil {
			return fmt.Errorf("sold ticket %d of raffle %s has no owner", winner.Idx, raffle.Code)
		}

		if err := s.payout(ctx, raffle, *winner.OwnerID); err != nil {
			return err
		}

		now := time.Now()
		if err := s.raffleRepo.SetWinner(ctx, raffle.ID, *winner.OwnerID, winner.Idx, now); err != nil {
			return err
		}
		raffle.Status = domain.RaffleStatusFinished
		raffle.WinnerID = winner.OwnerID
		raffle.WinnerNumber = &winner.Idx
		raffle.EndedAt = &now
		return nil
	})
	if err != nil {
		metrics.Draws.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	metrics.Draws.WithLabelValues(metrics.ResultOK).Inc()

	s.sink.Publish(events.New(events.WinnerDrawn, raffleCode, map[string]any{
		"winner_id":     *raffle.WinnerID,
		"winner_number": *raffle.WinnerNumber,
	}))
	s.sink.Publish(events.New(events.RaffleStatusChanged, raffleCode, map[string]any{
		"status": raffle.Status,
	}))
	zap.L().Info("raffle drawn",
		zap.String("raffle", raffleCode),
		zap.Int("winner_number", *raffle.WinnerNumber),
	)
	return raffle, nil
}

func (s *Service) mayDraw(raffle *domain.Raffle, actor Actor) bool {
	if actor.System || actor.Admin {
		return true
	}
	return raffle.DrawMode == domain.DrawModeManual && raffle.HostID == actor.ID
}

// payout splits the pot 70/20/10 between winner, host and platform. When the
// winner hosts their own raffle the two shares merge into one credit. The
// platform share absorbs rounding residue, so the credits sum to the pot
// exactly. Credits are issued in ascending user id order.
func (s *Service) payout(ctx context.Context, raffle *domain.Raffle, winnerID int) error {
	currency, ok := raffle.Currency()
	if !ok {
		return nil
	}
	pot := raffle.Pot()
	if pot == 0 {
		return nil
	}

	winnerShare := pot * winnerSharePct / 100
	if winnerShare == 0 {
		// Integer split of a tiny pot floors the winner to zero; a
		// positive pot must always pay the winner at least 1.
		winnerShare = 1
	}
	hostShare := pot * hostSharePct / 100
	platformShare := pot - winnerShare - hostShare

	type credit struct {
		userID int
		amount int64
		what   string
	}
	var credits []credit
	if winnerID == raffle.HostID {
		credits = append(credits, credit{winnerID, winnerShare + hostShare, "winner and host share"})
	} else {
		credits = append(credits,
			credit{winnerID, winnerShare, "winner share"},
			credit{raffle.HostID, hostShare, "host share"},
		)
	}
	if platformShare > 0 {
		credits = append(credits, credit{s.platformUserID, platformShare, "platform share"})
	}
	sort.Slice(credits, func(i, j int) bool { return credits[i].userID < credits[j].userID })

	for _, c := range credits {
		if c.amount == 0 {
			continue
		}
		description := fmt.Sprintf("raffle %s: %s", raffle.Code, c.what)
		if err := s.walletService.Credit(ctx, c.userID, currency, c.amount, domain.TxTypePayout, description); err != nil {
			return err
		}
	}

	return s.raffleRepo.UpdatePot(ctx, raffle.ID, 0, 0)
}

// Cancel terminates an active or pending raffle, refunding every
// participant's spend and resetting the allocation table. Host/admin only.
func (s *Service) Cancel(ctx context.Context, raffleCode string, actor Actor) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByCodeForUpdate(ctx, raffleCode)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		if raffle.Status != domain.RaffleStatusActive && raffle.Status != domain.RaffleStatusPending {
			return domain.ErrRaffleNotActive
		}
		if !actor.System && !actor.Admin && raffle.HostID != actor.ID {
			return domain.ErrUnauthorized
		}

		participants, err := s.participantRepo.FindByRaffleID(ctx, raffle.ID)
		if err != nil {
			return err
		}
		for _, p := range participants {
			if p.SpentFires > 0 {
				description := fmt.Sprintf("raffle %s cancelled: refund", raffle.Code)
				if err := s.walletService.Credit(ctx, p.UserID, domain.CurrencyFires, p.SpentFires, domain.TxTypeRefund, description); err != nil {
					return err
				}
			}
			if p.SpentCoins > 0 {
				description := fmt.Sprintf("raffle %s cancelled: refund", raffle.Code)
				if err := s.walletService.Credit(ctx, p.UserID, domain.CurrencyCoins, p.SpentCoins, domain.TxTypeRefund, description); err != nil {
					return err
				}
			}
		}

		if err := s.raffleRepo.UpdatePot(ctx, raffle.ID, 0, 0); err != nil {
			return err
		}
		if err := s.ticketRepo.ResetAll(ctx, raffle.ID); err != nil {
			return err
		}
		if err := s.participantRepo.DeleteByRaffleID(ctx, raffle.ID); err != nil {
			return err
		}
		now := time.Now()
		return s.raffleRepo.UpdateStatus(ctx, raffle.ID, domain.RaffleStatusCancelled, &now)
	})
	if err != nil {
		return err
	}

	s.sink.Publish(events.New(events.RaffleStatusChanged, raffleCode, map[string]any{
		"status": domain.RaffleStatusCancelled,
	}))
	return nil
}
