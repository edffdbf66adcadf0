package raffleservice

//go:generate mockgen -source=raffleservice.go -destination=raffleservice_mock.go -package=raffleservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/pg"
)

const (
	maxNumbersRange  = 10000
	codeLength       = 8
	codeGenAttempts  = 5
	maxScheduleAhead = 90 * 24 * time.Hour
)

var (
	ErrInvalidParams = errors.New("invalid raffle parameters")
	ErrCodeExhausted = errors.New("can't generate unique raffle code")
)

type RaffleRepo interface {
	Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error)
	FindByCode(ctx context.Context, code string) (*domain.Raffle, error)
	List(ctx context.Context, status string) ([]domain.Raffle, error)
}

type TicketRepo interface {
	CreateBatch(ctx context.Context, raffleID, count int) error
	FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Ticket, error)
}

type ParticipantRepo interface {
	FindByRaffleID(ctx context.Context, raffleID int) ([]domain.Participant, error)
}

type Service struct {
	raffleRepo      RaffleRepo
	ticketRepo      TicketRepo
	participantRepo ParticipantRepo
	txManager       pg.TXManager
}

func New(raffleRepo RaffleRepo, ticketRepo TicketRepo, participantRepo ParticipantRepo, txManager pg.TXManager) *Service {
	return &Service{
		raffleRepo:      raffleRepo,
		ticketRepo:      ticketRepo,
		participantRepo: participantRepo,
		txManager:       txManager,
	}
}

type CreateParams struct {
	Mode            string
	NumbersRange    int
	PriceFires      int64
	PriceCoins      int64
	DrawMode        string
	ScheduledDrawAt *time.Time
}

func (p *CreateParams) validate(now time.Time) error {
	switch p.Mode {
	case domain.RaffleModeFires:
		if p.PriceFires <= 0 {
			return ErrInvalidParams
		}
	case domain.RaffleModeCoins:
		if p.PriceCoins <= 0 {
			return ErrInvalidParams
		}
	case domain.RaffleModePrize:
	default:
		return ErrInvalidParams
	}

	if p.NumbersRange < 1 || p.NumbersRange > maxNumbersRange {
		return ErrInvalidParams
	}

	switch p.DrawMode {
	case domain.DrawModeAutomatic, domain.DrawModeManual:
		if p.ScheduledDrawAt != nil {
			return ErrInvalidParams
		}
	case domain.DrawModeScheduled:
		if p.ScheduledDrawAt == nil || p.ScheduledDrawAt.Before(now) || p.ScheduledDrawAt.After(now.Add(maxScheduleAhead)) {
			return ErrInvalidParams
		}
	default:
		return ErrInvalidParams
	}
	return nil
}

// Create opens a raffle and pre-materializes all N numbers as available in
// the same transaction, so a partially created allocation table is never
// visible.
func (s *Service) Create(ctx context.Context, hostID int, params CreateParams) (*domain.Raffle, error) {
	now := time.Now()
	if err := params.validate(now); err != nil {
		return nil, err
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	var created *domain.Raffle
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle := &domain.Raffle{
			Code:            code,
			HostID:          hostID,
			Mode:            params.Mode,
			NumbersRange:    params.NumbersRange,
			PriceFires:      params.PriceFires,
			PriceCoins:      params.PriceCoins,
			Status:          domain.RaffleStatusActive,
			DrawMode:        params.DrawMode,
			ScheduledDrawAt: params.ScheduledDrawAt,
			CreatedAt:       now,
			StartedAt:       &now,
		}
		created, err = s.raffleRepo.Create(ctx, raffle)
		if err != nil {
			return err
		}
		return s.ticketRepo.CreateBatch(ctx, created.ID, params.NumbersRange)
	})
	if err != nil {
		zap.L().Error("can't create raffle", zap.Error(err))
		return nil, err
	}

	zap.L().Info("raffle created",
		zap.String("code", created.Code),
		zap.Int("numbers", created.NumbersRange),
		zap.String("mode", created.Mode),
	)
	return created, nil
}

// generateCode derives a short shareable code from a UUID and retries on the
// rare collision.
func (s *Service) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeGenAttempts; attempt++ {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		code := strings.ToUpper(raw[:codeLength])

		existing, err := s.raffleRepo.FindByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

func (s *Service) Get(ctx context.Context, code string) (*domain.Raffle, error) {
	raffle, err := s.raffleRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, domain.ErrRaffleNotFound
	}
	return raffle, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Raffle, error) {
	return s.raffleRepo.List(ctx, status)
}

// GetTickets returns the allocation table for display. Reads here are
// eventually consistent; mutation paths re-check state under row locks.
func (s *Service) GetTickets(ctx context.Context, code string) ([]domain.Ticket, error) {
	raffle, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.ticketRepo.FindByRaffleID(ctx, raffle.ID)
}

func (s *Service) GetParticipants(ctx context.Context, code string) ([]domain.Participant, error) {
	raffle, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.participantRepo.FindByRaffleID(ctx, raffle.ID)
}
