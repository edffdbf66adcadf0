package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/events"
	"github.com/VictorSmolin/rafflehub/internal/service/drawservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// syncPool runs every task inline so sweep assertions are deterministic.
type syncPool struct{}

func (syncPool) AddTask(ctx context.Context, task Task) error { return task(ctx) }
func (syncPool) Close()                                       {}

type mocks struct {
	raffleRepo   *MockRaffleRepo
	ticketRepo   *MockTicketRepo
	drawService  *MockDrawService
	reservations *MockReservationService
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		raffleRepo:   NewMockRaffleRepo(ctrl),
		ticketRepo:   NewMockTicketRepo(ctrl),
		drawService:  NewMockDrawService(ctrl),
		reservations: NewMockReservationService(ctrl),
	}
	service := &Service{
		raffleRepo:    m.raffleRepo,
		ticketRepo:    m.ticketRepo,
		drawService:   m.drawService,
		reservations:  m.reservations,
		sink:          events.NopSink{},
		workerPool:    syncPool{},
		drawInterval:  time.Minute,
		sweepInterval: time.Minute,
	}
	defer ctrl.Finish()
	return service, m
}

func TestHandleRaffle(t *testing.T) {
	tests := []struct {
		name          string
		raffle        domain.Raffle
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Scheduled raffle not fully sold is skipped",
			raffle: domain.Raffle{
				ID:           1,
				Code:         "1A2B3C4D",
				DrawMode:     domain.DrawModeScheduled,
				NumbersRange: 10,
			},
			prepareMock: func(m *mocks) {
				m.ticketRepo.EXPECT().CountByState(gomock.Any(), 1, domain.TicketSold).Return(5, nil)
			},
			expectedError: nil,
		},
		{
			name: "Scheduled raffle fully sold is drawn",
			raffle: domain.Raffle{
				ID:           1,
				Code:         "1A2B3C4D",
				DrawMode:     domain.DrawModeScheduled,
				NumbersRange: 10,
			},
			prepareMock: func(m *mocks) {
				m.ticketRepo.EXPECT().CountByState(gomock.Any(), 1, domain.TicketSold).Return(10, nil)
				m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.SystemActor).Return(&domain.Raffle{ID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Automatic raffle is drawn without counting",
			raffle: domain.Raffle{
				ID:       2,
				Code:     "FFFFFFFF",
				DrawMode: domain.DrawModeAutomatic,
			},
			prepareMock: func(m *mocks) {
				m.drawService.EXPECT().Draw(gomock.Any(), "FFFFFFFF", drawservice.SystemActor).Return(&domain.Raffle{ID: 2}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Lost race to a manual draw is not an error",
			raffle: domain.Raffle{
				ID:       2,
				Code:     "FFFFFFFF",
				DrawMode: domain.DrawModeAutomatic,
			},
			prepareMock: func(m *mocks) {
				m.drawService.EXPECT().Draw(gomock.Any(), "FFFFFFFF", drawservice.SystemActor).Return(nil, domain.ErrRaffleNotActive)
			},
			expectedError: nil,
		},
		{
			name: "Raffle emptied by a cancel is not an error",
			raffle: domain.Raffle{
				ID:       2,
				Code:     "FFFFFFFF",
				DrawMode: domain.DrawModeAutomatic,
			},
			prepareMock: func(m *mocks) {
				m.drawService.EXPECT().Draw(gomock.Any(), "FFFFFFFF", drawservice.SystemActor).Return(nil, domain.ErrNoSoldTickets)
			},
			expectedError: nil,
		},
		{
			name: "Draw failure surfaces",
			raffle: domain.Raffle{
				ID:       2,
				Code:     "FFFFFFFF",
				DrawMode: domain.DrawModeAutomatic,
			},
			prepareMock: func(m *mocks) {
				m.drawService.EXPECT().Draw(gomock.Any(), "FFFFFFFF", drawservice.SystemActor).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			err := service.handleRaffle(context.Background(), tt.raffle)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessDraws(t *testing.T) {
	t.Run("Draws due scheduled and sold out automatic raffles", func(t *testing.T) {
		service, m := NewMock(t)

		due := []domain.Raffle{{ID: 1, Code: "1A2B3C4D", DrawMode: domain.DrawModeScheduled, NumbersRange: 10}}
		soldOut := []domain.Raffle{{ID: 2, Code: "FFFFFFFF", DrawMode: domain.DrawModeAutomatic}}

		m.raffleRepo.EXPECT().FindDueScheduled(gomock.Any(), gomock.Any()).Return(due, nil)
		m.raffleRepo.EXPECT().FindSoldOutAutomatic(gomock.Any()).Return(soldOut, nil)
		m.ticketRepo.EXPECT().CountByState(gomock.Any(), 1, domain.TicketSold).Return(10, nil)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.SystemActor).Return(&domain.Raffle{ID: 1}, nil)
		m.drawService.EXPECT().Draw(gomock.Any(), "FFFFFFFF", drawservice.SystemActor).Return(&domain.Raffle{ID: 2}, nil)

		service.processDraws(context.Background())

		_, stillInFlight := drawsInFlight.Load("1A2B3C4D")
		assert.False(t, stillInFlight)
	})

	t.Run("Raffle already in flight is skipped", func(t *testing.T) {
		service, m := NewMock(t)

		drawsInFlight.Store("1A2B3C4D", struct{}{})
		defer drawsInFlight.Delete("1A2B3C4D")

		due := []domain.Raffle{{ID: 1, Code: "1A2B3C4D", DrawMode: domain.DrawModeAutomatic}}
		m.raffleRepo.EXPECT().FindDueScheduled(gomock.Any(), gomock.Any()).Return(due, nil)
		m.raffleRepo.EXPECT().FindSoldOutAutomatic(gomock.Any()).Return(nil, nil)

		service.processDraws(context.Background())
	})

	t.Run("Fetch failure aborts the tick", func(t *testing.T) {
		service, m := NewMock(t)

		m.raffleRepo.EXPECT().FindDueScheduled(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		service.processDraws(context.Background())
	})
}

func TestProcessReservations(t *testing.T) {
	t.Run("Sweeps expired reservations", func(t *testing.T) {
		service, m := NewMock(t)
		m.reservations.EXPECT().SweepExpired(gomock.Any()).Return(3, nil)

		service.processReservations(context.Background())
	})

	t.Run("Sweep failure is logged and swallowed", func(t *testing.T) {
		service, m := NewMock(t)
		m.reservations.EXPECT().SweepExpired(gomock.Any()).Return(0, errors.New("db error"))

		service.processReservations(context.Background())
	})
}
