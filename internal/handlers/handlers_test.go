package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/VictorSmolin/rafflehub/docs"
	"github.com/VictorSmolin/rafflehub/internal/events"
	authhandlers "github.com/VictorSmolin/rafflehub/internal/handlers/auth"
	raffleshandlers "github.com/VictorSmolin/rafflehub/internal/handlers/raffles"
	wallethandlers "github.com/VictorSmolin/rafflehub/internal/handlers/wallet"
	"github.com/VictorSmolin/rafflehub/internal/service"
	"github.com/VictorSmolin/rafflehub/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        authhandlers.NewMockService(ctrl),
		WalletService:      wallethandlers.NewMockService(ctrl),
		RaffleService:      raffleshandlers.NewMockRaffleService(ctrl),
		ReservationService: raffleshandlers.NewMockReservationService(ctrl),
		PurchaseService:    raffleshandlers.NewMockPurchaseService(ctrl),
		DrawService:        raffleshandlers.NewMockDrawService(ctrl),
	}

	h := New(services, events.NewHub(), ratelimit.New(30, time.Minute))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockRaffleHandler := NewMockRaffleHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().CreateRaffle(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().ListRaffles(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().GetRaffle(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().GetTickets(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().GetParticipants(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().Reserve(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().Release(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().Purchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().Draw(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().ListRequests(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().ApproveRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaffleHandler.EXPECT().RejectRequest(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		WalletHandler: mockWalletHandler,
		RaffleHandler: mockRaffleHandler,
		hub:           events.NewHub(),
		limiter:       ratelimit.New(30, time.Minute),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/transactions", http.StatusUnauthorized},
		{"GET", "/api/raffles", http.StatusOK},
		{"GET", "/api/raffles/1A2B3C4D", http.StatusOK},
		{"GET", "/api/raffles/1A2B3C4D/numbers", http.StatusOK},
		{"GET", "/api/raffles/1A2B3C4D/participants", http.StatusOK},
		{"POST", "/api/raffles/1A2B3C4D/numbers/3/reserve", http.StatusOK},
		{"POST", "/api/raffles/1A2B3C4D/numbers/3/release", http.StatusOK},
		{"POST", "/api/raffles", http.StatusUnauthorized},
		{"GET", "/api/raffles/1A2B3C4D/requests", http.StatusUnauthorized},
		{"POST", "/api/raffles/1A2B3C4D/draw", http.StatusUnauthorized},
		{"POST", "/api/raffles/1A2B3C4D/cancel", http.StatusUnauthorized},
		{"POST", "/api/raffles/1A2B3C4D/purchase", http.StatusUnauthorized},
		{"POST", "/api/requests/1/approve", http.StatusUnauthorized},
		{"POST", "/api/requests/1/reject", http.StatusUnauthorized},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
