package raffleservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	raffleRepo      *MockRaffleRepo
	ticketRepo      *MockTicketRepo
	participantRepo *MockParticipantRepo
	txManager       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		raffleRepo:      NewMockRaffleRepo(ctrl),
		ticketRepo:      NewMockTicketRepo(ctrl),
		participantRepo: NewMockParticipantRepo(ctrl),
		txManager:       pg.NewMockTXManager(ctrl),
	}
	service := New(m.raffleRepo, m.ticketRepo, m.participantRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCreate(t *testing.T) {
	t.Run("Creates raffle and materializes the numbers", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m.txManager)

		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.raffleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
				assert.Len(t, raffle.Code, 8)
				assert.Equal(t, domain.RaffleStatusActive, raffle.Status)
				assert.Equal(t, 100, raffle.NumbersRange)
				assert.NotNil(t, raffle.StartedAt)
				created := *raffle
				created.ID = 7
				return &created, nil
			},
		)
		m.ticketRepo.EXPECT().CreateBatch(gomock.Any(), 7, 100).Return(nil)

		raffle, err := service.Create(context.Background(), 5, CreateParams{
			Mode:         domain.RaffleModeFires,
			NumbersRange: 100,
			PriceFires:   10,
			DrawMode:     domain.DrawModeManual,
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, raffle.ID)
	})

	t.Run("Retries code generation on collision", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m.txManager)

		taken := m.raffleRepo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(&domain.Raffle{ID: 1}, nil)
		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, nil).After(taken)
		m.raffleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
				created := *raffle
				created.ID = 8
				return &created, nil
			},
		)
		m.ticketRepo.EXPECT().CreateBatch(gomock.Any(), 8, 10).Return(nil)

		_, err := service.Create(context.Background(), 5, CreateParams{
			Mode:         domain.RaffleModePrize,
			NumbersRange: 10,
			DrawMode:     domain.DrawModeManual,
		})
		assert.NoError(t, err)
	})

	t.Run("Batch failure rolls the raffle back", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m.txManager)

		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.raffleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
				created := *raffle
				created.ID = 9
				return &created, nil
			},
		)
		m.ticketRepo.EXPECT().CreateBatch(gomock.Any(), 9, 10).Return(errors.New("db error"))

		raffle, err := service.Create(context.Background(), 5, CreateParams{
			Mode:         domain.RaffleModeFires,
			NumbersRange: 10,
			PriceFires:   1,
			DrawMode:     domain.DrawModeManual,
		})
		assert.Nil(t, raffle)
		assert.EqualError(t, err, "db error")
	})
}

func TestCreateValidation(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name   string
		params CreateParams
	}{
		{
			name: "Fires raffle without a price",
			params: CreateParams{
				Mode:         domain.RaffleModeFires,
				NumbersRange: 10,
				DrawMode:     domain.DrawModeManual,
			},
		},
		{
			name: "Coins raffle without a price",
			params: CreateParams{
				Mode:         domain.RaffleModeCoins,
				NumbersRange: 10,
				DrawMode:     domain.DrawModeManual,
			},
		},
		{
			name: "Unknown mode",
			params: CreateParams{
				Mode:         "lottery",
				NumbersRange: 10,
				DrawMode:     domain.DrawModeManual,
			},
		},
		{
			name: "Zero numbers range",
			params: CreateParams{
				Mode:       domain.RaffleModeFires,
				PriceFires: 1,
				DrawMode:   domain.DrawModeManual,
			},
		},
		{
			name: "Range above the cap",
			params: CreateParams{
				Mode:         domain.RaffleModeFires,
				NumbersRange: 10001,
				PriceFires:   1,
				DrawMode:     domain.DrawModeManual,
			},
		},
		{
			name: "Unknown draw mode",
			params: CreateParams{
				Mode:         domain.RaffleModeFires,
				NumbersRange: 10,
				PriceFires:   1,
				DrawMode:     "eventually",
			},
		},
		{
			name: "Manual draw with a schedule",
			params: CreateParams{
				Mode:            domain.RaffleModeFires,
				NumbersRange:    10,
				PriceFires:      1,
				DrawMode:        domain.DrawModeManual,
				ScheduledDrawAt: timePtr(time.Now().Add(time.Hour)),
			},
		},
		{
			name: "Scheduled draw without a time",
			params: CreateParams{
				Mode:         domain.RaffleModeFires,
				NumbersRange: 10,
				PriceFires:   1,
				DrawMode:     domain.DrawModeScheduled,
			},
		},
		{
			name: "Scheduled draw in the past",
			params: CreateParams{
				Mode:            domain.RaffleModeFires,
				NumbersRange:    10,
				PriceFires:      1,
				DrawMode:        domain.DrawModeScheduled,
				ScheduledDrawAt: timePtr(time.Now().Add(-time.Hour)),
			},
		},
		{
			name: "Scheduled draw too far ahead",
			params: CreateParams{
				Mode:            domain.RaffleModeFires,
				NumbersRange:    10,
				PriceFires:      1,
				DrawMode:        domain.DrawModeScheduled,
				ScheduledDrawAt: timePtr(time.Now().Add(91 * 24 * time.Hour)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raffle, err := service.Create(context.Background(), 5, tt.params)
			assert.Nil(t, raffle)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestCreateScheduled(t *testing.T) {
	service, m := NewMock(t)
	passthroughTx(m.txManager)

	drawAt := time.Now().Add(24 * time.Hour)
	m.raffleRepo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.raffleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
			assert.Equal(t, domain.DrawModeScheduled, raffle.DrawMode)
			assert.Equal(t, drawAt, *raffle.ScheduledDrawAt)
			created := *raffle
			created.ID = 11
			return &created, nil
		},
	)
	m.ticketRepo.EXPECT().CreateBatch(gomock.Any(), 11, 50).Return(nil)

	_, err := service.Create(context.Background(), 5, CreateParams{
		Mode:            domain.RaffleModeCoins,
		NumbersRange:    50,
		PriceCoins:      2,
		DrawMode:        domain.DrawModeScheduled,
		ScheduledDrawAt: &drawAt,
	})
	assert.NoError(t, err)
}

func TestCreateCodeExhausted(t *testing.T) {
	service, m := NewMock(t)

	m.raffleRepo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(&domain.Raffle{ID: 1}, nil).Times(5)

	_, err := service.Create(context.Background(), 5, CreateParams{
		Mode:         domain.RaffleModeFires,
		NumbersRange: 10,
		PriceFires:   1,
		DrawMode:     domain.DrawModeManual,
	})
	assert.ErrorIs(t, err, ErrCodeExhausted)
}

func TestGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service, m := NewMock(t)
		expected := &domain.Raffle{ID: 7, Code: "1A2B3C4D"}
		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), "1A2B3C4D").Return(expected, nil)

		raffle, err := service.Get(context.Background(), "1A2B3C4D")
		assert.NoError(t, err)
		assert.Equal(t, expected, raffle)
	})

	t.Run("Unknown code", func(t *testing.T) {
		service, m := NewMock(t)
		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), "FFFFFFFF").Return(nil, nil)

		raffle, err := service.Get(context.Background(), "FFFFFFFF")
		assert.Nil(t, raffle)
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
	})
}

func TestList(t *testing.T) {
	service, m := NewMock(t)
	expected := []domain.Raffle{{ID: 1}, {ID: 2}}
	m.raffleRepo.EXPECT().List(gomock.Any(), domain.RaffleStatusActive).Return(expected, nil)

	raffles, err := service.List(context.Background(), domain.RaffleStatusActive)
	assert.NoError(t, err)
	assert.Equal(t, expected, raffles)
}

func TestGetTickets(t *testing.T) {
	t.Run("Returns the allocation table", func(t *testing.T) {
		service, m := NewMock(t)
		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), "1A2B3C4D").Return(&domain.Raffle{ID: 7}, nil)
		expected := []domain.Ticket{{ID: 1, Idx: 1}, {ID: 2, Idx: 2}}
		m.ticketRepo.EXPECT().FindByRaffleID(gomock.Any(), 7).Return(expected, nil)

		tickets, err := service.GetTickets(context.Background(), "1A2B3C4D")
		assert.NoError(t, err)
		assert.Equal(t, expected, tickets)
	})

	t.Run("Unknown raffle", func(t *testing.T) {
		service, m := NewMock(t)
		m.raffleRepo.EXPECT().FindByCode(gomock.Any(), "FFFFFFFF").Return(nil, nil)

		_, err := service.GetTickets(context.Background(), "FFFFFFFF")
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
	})
}

func TestGetParticipants(t *testing.T) {
	service, m := NewMock(t)
	m.raffleRepo.EXPECT().FindByCode(gomock.Any(), "1A2B3C4D").Return(&domain.Raffle{ID: 7}, nil)
	expected := []domain.Participant{{UserID: 2, Numbers: []int{1, 3}}}
	m.participantRepo.EXPECT().FindByRaffleID(gomock.Any(), 7).Return(expected, nil)

	participants, err := service.GetParticipants(context.Background(), "1A2B3C4D")
	assert.NoError(t, err)
	assert.Equal(t, expected, participants)
}
