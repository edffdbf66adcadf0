package scheduler

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/VictorSmolin/rafflehub/internal/config"
	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/events"
	"github.com/VictorSmolin/rafflehub/internal/service/drawservice"
)

// drawsInFlight guards against the same raffle being drawn by two
// overlapping sweep ticks.
var drawsInFlight sync.Map

type RaffleRepo interface {
	FindDueScheduled(ctx context.Context, now time.Time) ([]domain.Raffle, error)
	FindSoldOutAutomatic(ctx context.Context) ([]domain.Raffle, error)
}

type TicketRepo interface {
	CountByState(ctx context.Context, raffleID int, state string) (int, error)
}

type DrawService interface {
	Draw(ctx context.Context, raffleCode string, actor drawservice.Actor) (*domain.Raffle, error)
}

type ReservationService interface {
	SweepExpired(ctx context.Context) (int, error)
}

type Service struct {
	raffleRepo   RaffleRepo
	ticketRepo   TicketRepo
	drawService  DrawService
	reservations ReservationService
	sink         events.Sink
	workerPool   WorkerPoolI

	drawInterval  time.Duration
	sweepInterval time.Duration
	cron          *cron.Cron
}

func New(cfg *config.Config, raffleRepo RaffleRepo, ticketRepo TicketRepo, drawService DrawService, reservations ReservationService, sink events.Sink) *Service {
	return &Service{
		raffleRepo:    raffleRepo,
		ticketRepo:    ticketRepo,
		drawService:   drawService,
		reservations:  reservations,
		sink:          sink,
		workerPool:    NewWorkerPool(10),
		drawInterval:  cfg.DrawSweepInterval,
		sweepInterval: cfg.ReservationSweepInterval,
	}
}

// Start launches the periodic sweeps. They run on their own context so a
// client disconnect can never cancel a draw mid-flight; only process
// shutdown stops them.
func (s *Service) Start(ctx context.Context) {
	s.cron = cron.New()
	s.cron.Schedule(cron.Every(s.drawInterval), cron.FuncJob(func() { s.processDraws(ctx) }))
	s.cron.Schedule(cron.Every(s.sweepInterval), cron.FuncJob(func() { s.processReservations(ctx) }))
	s.cron.Start()
	zap.L().Info("scheduler started",
		zap.Duration("draw_interval", s.drawInterval),
		zap.Duration("sweep_interval", s.sweepInterval),
	)

	go func() {
		<-ctx.Done()
		zap.L().Info("Context canceled, stopping scheduler")
		<-s.cron.Stop().Done()
		s.workerPool.Close()
	}()
}

// processDraws handles one sweep tick: every due scheduled raffle and every
// sold-out automatic raffle gets an isolated draw attempt. One raffle
// failing must not starve the rest of the sweep.
func (s *Service) processDraws(ctx context.Context) {
	due, err := s.raffleRepo.FindDueScheduled(ctx, time.Now())
	if err != nil {
		zap.L().Error("Failed to fetch due scheduled raffles", zap.Error(err))
		return
	}
	soldOut, err := s.raffleRepo.FindSoldOutAutomatic(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch sold out raffles", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, raffle := range append(due, soldOut...) {
		raffle := raffle

		if _, loaded := drawsInFlight.LoadOrStore(raffle.Code, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func(taskCtx context.Context) error {
				defer drawsInFlight.Delete(raffle.Code)
				return s.handleRaffle(taskCtx, raffle)
			})
			if err != nil {
				drawsInFlight.Delete(raffle.Code)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing draws", zap.Error(err))
	}
}

func (s *Service) handleRaffle(ctx context.Context, raffle domain.Raffle) error {
	if raffle.DrawMode == domain.DrawModeScheduled {
		sold, err := s.ticketRepo.CountByState(ctx, raffle.ID, domain.TicketSold)
		if err != nil {
			return err
		}
		if sold < raffle.NumbersRange {
			// Not fully sold at the scheduled time: skip the draw and
			// leave the raffle active.
			s.sink.Publish(events.New(events.DrawCancelled, raffle.Code, map[string]any{
				"reason": "no_all_sold",
				"sold":   sold,
				"total":  raffle.NumbersRange,
			}))
			zap.L().Info("scheduled draw skipped, raffle not fully sold",
				zap.String("raffle", raffle.Code),
				zap.Int("sold", sold),
				zap.Int("total", raffle.NumbersRange),
			)
			return nil
		}
	}

	_, err := s.drawService.Draw(ctx, raffle.Code, drawservice.SystemActor)
	if err != nil {
		// Lost races (concurrent cancel or manual draw) are expected;
		// log and move on without failing the sweep.
		if errors.Is(err, domain.ErrRaffleNotActive) || errors.Is(err, domain.ErrNoSoldTickets) {
			zap.L().Warn("draw skipped",
				zap.String("raffle", raffle.Code),
				zap.Error(err),
			)
			return nil
		}
		zap.L().Error("draw failed",
			zap.String("raffle", raffle.Code),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Service) processReservations(ctx context.Context) {
	if _, err := s.reservations.SweepExpired(ctx); err != nil {
		zap.L().Error("Failed to sweep expired reservations", zap.Error(err))
	}
}
