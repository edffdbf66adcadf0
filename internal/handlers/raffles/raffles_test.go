package raffles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/VictorSmolin/rafflehub/internal/domain"
	"github.com/VictorSmolin/rafflehub/internal/dto"
	drawservice "github.com/VictorSmolin/rafflehub/internal/service/drawservice"
	purchaseservice "github.com/VictorSmolin/rafflehub/internal/service/purchaseservice"
	raffleservice "github.com/VictorSmolin/rafflehub/internal/service/raffleservice"
	"github.com/VictorSmolin/rafflehub/pkg/auth"
	"github.com/VictorSmolin/rafflehub/pkg/utils"
)

type mocks struct {
	raffleService   *MockRaffleService
	reservations    *MockReservationService
	purchaseService *MockPurchaseService
	drawService     *MockDrawService
}

func NewMock(t *testing.T) (*RaffleHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		raffleService:   NewMockRaffleService(ctrl),
		reservations:    NewMockReservationService(ctrl),
		purchaseService: NewMockPurchaseService(ctrl),
		drawService:     NewMockDrawService(ctrl),
	}
	handler := New(m.raffleService, m.reservations, m.purchaseService, m.drawService)
	defer ctrl.Finish()
	return handler, m
}

func newRequest(method, target string, body string, params map[string]string) *http.Request {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func asUser(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func asAdmin(req *http.Request, userID int) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, domain.RoleAdmin)
	return req.WithContext(ctx)
}

func errMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestCreateRaffleHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m *mocks)
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: `{"mode":"fires","numbers_range":100,"price_fires":10,"draw_mode":"manual"}`,
			prepareMock: func(m *mocks) {
				m.raffleService.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(&domain.Raffle{
					Code:         "1A2B3C4D",
					HostID:       1,
					Mode:         domain.RaffleModeFires,
					NumbersRange: 100,
					PriceFires:   10,
					Status:       domain.RaffleStatusActive,
					DrawMode:     domain.DrawModeManual,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func(m *mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid parameters",
			body: `{"mode":"fires","numbers_range":0,"draw_mode":"manual"}`,
			prepareMock: func(m *mocks) {
				m.raffleService.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, raffleservice.ErrInvalidParams)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal error",
			body: `{"mode":"fires","numbers_range":100,"price_fires":10,"draw_mode":"manual"}`,
			prepareMock: func(m *mocks) {
				m.raffleService.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := NewMock(t)
			tt.prepareMock(m)

			req := asUser(newRequest("POST", "/api/raffles", tt.body, nil), 1)
			rr := httptest.NewRecorder()

			handler.CreateRaffle(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.RaffleResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "1A2B3C4D", resp.Code)
			}
		})
	}
}

func TestGetRaffleHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		handler, m := NewMock(t)
		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(&domain.Raffle{
			Code:   "1A2B3C4D",
			Status: domain.RaffleStatusActive,
		}, nil)

		req := newRequest("GET", "/api/raffles/1A2B3C4D", "", map[string]string{"code": "1A2B3C4D"})
		rr := httptest.NewRecorder()

		handler.GetRaffle(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown raffle", func(t *testing.T) {
		handler, m := NewMock(t)
		m.raffleService.EXPECT().Get(gomock.Any(), "FFFFFFFF").Return(nil, domain.ErrRaffleNotFound)

		req := newRequest("GET", "/api/raffles/FFFFFFFF", "", map[string]string{"code": "FFFFFFFF"})
		rr := httptest.NewRecorder()

		handler.GetRaffle(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Raffle not found", errMessage(t, rr))
	})

	t.Run("Malformed code", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := newRequest("GET", "/api/raffles/nope", "", map[string]string{"code": "nope"})
		rr := httptest.NewRecorder()

		handler.GetRaffle(rr, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestListRafflesHandler(t *testing.T) {
	handler, m := NewMock(t)
	m.raffleService.EXPECT().List(gomock.Any(), "active").Return([]domain.Raffle{
		{Code: "1A2B3C4D", Status: domain.RaffleStatusActive},
		{Code: "FFFFFFFF", Status: domain.RaffleStatusActive},
	}, nil)

	req := newRequest("GET", "/api/raffles?status=active", "", nil)
	rr := httptest.NewRecorder()

	handler.ListRaffles(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.RaffleResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestGetTicketsHandler(t *testing.T) {
	handler, m := NewMock(t)
	ownerID := 7
	m.raffleService.EXPECT().GetTickets(gomock.Any(), "1A2B3C4D").Return([]domain.Ticket{
		{Idx: 1, State: domain.TicketAvailable},
		{Idx: 2, State: domain.TicketSold, OwnerID: &ownerID},
	}, nil)

	req := newRequest("GET", "/api/raffles/1A2B3C4D/numbers", "", map[string]string{"code": "1A2B3C4D"})
	rr := httptest.NewRecorder()

	handler.GetTickets(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.TicketResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, domain.TicketSold, resp[1].State)
	assert.Equal(t, &ownerID, resp[1].OwnerID)
}

func TestReserveHandler(t *testing.T) {
	tests := []struct {
		name         string
		params       map[string]string
		userID       int
		prepareMock  func(m *mocks)
		expectedCode int
	}{
		{
			name:   "Authenticated hold",
			params: map[string]string{"code": "1A2B3C4D", "idx": "3"},
			userID: 1,
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().Reserve(gomock.Any(), "1A2B3C4D", 3, 1).Return("", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Guest hold returns a token",
			params: map[string]string{"code": "1A2B3C4D", "idx": "3"},
			userID: 0,
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().Reserve(gomock.Any(), "1A2B3C4D", 3, 0).Return("hold-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Number taken",
			params: map[string]string{"code": "1A2B3C4D", "idx": "3"},
			userID: 1,
			prepareMock: func(m *mocks) {
				m.reservations.EXPECT().Reserve(gomock.Any(), "1A2B3C4D", 3, 1).Return("", domain.ErrTicketUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid index",
			params:       map[string]string{"code": "1A2B3C4D", "idx": "zero"},
			userID:       1,
			prepareMock:  func(m *mocks) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := NewMock(t)
			tt.prepareMock(m)

			req := newRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/reserve", "", tt.params)
			if tt.userID != 0 {
				req = asUser(req, tt.userID)
			}
			rr := httptest.NewRecorder()

			handler.Reserve(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.name == "Guest hold returns a token" {
				var resp dto.ReserveResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "hold-token", resp.HoldToken)
				assert.Equal(t, 3, resp.Idx)
			}
		})
	}
}

func TestReleaseHandler(t *testing.T) {
	t.Run("Owner releases", func(t *testing.T) {
		handler, m := NewMock(t)
		m.reservations.EXPECT().Release(gomock.Any(), "1A2B3C4D", 3, 1, "").Return(nil)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/release", "", map[string]string{"code": "1A2B3C4D", "idx": "3"}), 1)
		rr := httptest.NewRecorder()

		handler.Release(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Guest releases by hold token", func(t *testing.T) {
		handler, m := NewMock(t)
		m.reservations.EXPECT().Release(gomock.Any(), "1A2B3C4D", 3, 0, "hold-token").Return(nil)

		req := newRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/release", `{"hold_token":"hold-token"}`, map[string]string{"code": "1A2B3C4D", "idx": "3"})
		rr := httptest.NewRecorder()

		handler.Release(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Foreign hold is forbidden", func(t *testing.T) {
		handler, m := NewMock(t)
		m.reservations.EXPECT().Release(gomock.Any(), "1A2B3C4D", 3, 2, "").Return(domain.ErrUnauthorized)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/release", "", map[string]string{"code": "1A2B3C4D", "idx": "3"}), 2)
		rr := httptest.NewRecorder()

		handler.Release(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestPurchaseHandler(t *testing.T) {
	firesRaffle := &domain.Raffle{
		Code:         "1A2B3C4D",
		Mode:         domain.RaffleModeFires,
		NumbersRange: 10,
		PriceFires:   5,
		Status:       domain.RaffleStatusActive,
		DrawMode:     domain.DrawModeManual,
	}

	t.Run("Currency purchase settles", func(t *testing.T) {
		handler, m := NewMock(t)
		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(firesRaffle, nil)
		m.purchaseService.EXPECT().Purchase(gomock.Any(), "1A2B3C4D", []int{1, 2}, 1, purchaseservice.CurrencyPurchase{}).Return(&purchaseservice.Result{
			Numbers:   []int{1, 2},
			TotalCost: 10,
			Currency:  domain.CurrencyFires,
		}, nil)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[1,2]}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PurchaseResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []int{1, 2}, resp.Numbers)
		assert.Equal(t, int64(10), resp.TotalCost)
		assert.False(t, resp.Pending)
	})

	t.Run("Sell-out triggers the automatic draw", func(t *testing.T) {
		handler, m := NewMock(t)
		automatic := *firesRaffle
		automatic.DrawMode = domain.DrawModeAutomatic

		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(&automatic, nil)
		m.purchaseService.EXPECT().Purchase(gomock.Any(), "1A2B3C4D", []int{10}, 1, purchaseservice.CurrencyPurchase{}).Return(&purchaseservice.Result{
			Numbers:   []int{10},
			TotalCost: 5,
			Currency:  domain.CurrencyFires,
			AllSold:   true,
		}, nil)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.SystemActor).Return(&domain.Raffle{Code: "1A2B3C4D"}, nil)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[10]}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failed automatic draw does not fail the purchase", func(t *testing.T) {
		handler, m := NewMock(t)
		automatic := *firesRaffle
		automatic.DrawMode = domain.DrawModeAutomatic

		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(&automatic, nil)
		m.purchaseService.EXPECT().Purchase(gomock.Any(), "1A2B3C4D", []int{10}, 1, purchaseservice.CurrencyPurchase{}).Return(&purchaseservice.Result{
			Numbers: []int{10},
			AllSold: true,
		}, nil)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.SystemActor).Return(nil, errors.New("db error"))

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[10]}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Prize raffle opens a request", func(t *testing.T) {
		handler, m := NewMock(t)
		prize := *firesRaffle
		prize.Mode = domain.RaffleModePrize

		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(&prize, nil)
		m.purchaseService.EXPECT().Purchase(gomock.Any(), "1A2B3C4D", []int{1}, 1, purchaseservice.PrizePurchaseRequest{Comment: "pay by card"}).Return(&purchaseservice.Result{
			Numbers:   []int{1},
			Pending:   true,
			RequestID: 33,
		}, nil)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[1],"comment":"pay by card"}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PurchaseResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Pending)
		assert.Equal(t, 33, resp.RequestID)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		handler, m := NewMock(t)
		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(firesRaffle, nil)
		m.purchaseService.EXPECT().Purchase(gomock.Any(), "1A2B3C4D", []int{1}, 1, purchaseservice.CurrencyPurchase{}).Return(nil, domain.ErrInsufficientBalance)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[1]}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)
		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	})

	t.Run("Numbers unavailable", func(t *testing.T) {
		handler, m := NewMock(t)
		m.raffleService.EXPECT().Get(gomock.Any(), "1A2B3C4D").Return(firesRaffle, nil)
		m.purchaseService.EXPECT().Purchase(gomock.Any(), "1A2B3C4D", []int{1}, 1, purchaseservice.CurrencyPurchase{}).Return(nil, &purchaseservice.TicketUnavailableError{Indices: []int{1}})

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[1]}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Empty numbers rejected", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/purchase", `{"numbers":[]}`, map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDrawHandler(t *testing.T) {
	winnerID := 2
	winnerNumber := 7

	t.Run("Host draws", func(t *testing.T) {
		handler, m := NewMock(t)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.Actor{ID: 1}).Return(&domain.Raffle{
			Code:         "1A2B3C4D",
			Status:       domain.RaffleStatusFinished,
			WinnerID:     &winnerID,
			WinnerNumber: &winnerNumber,
		}, nil)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/draw", "", map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Draw(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.DrawResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 2, resp.WinnerID)
		assert.Equal(t, 7, resp.WinnerNumber)
		assert.Equal(t, domain.RaffleStatusFinished, resp.Status)
	})

	t.Run("Admin actor carries the role", func(t *testing.T) {
		handler, m := NewMock(t)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.Actor{ID: 9, Admin: true}).Return(&domain.Raffle{
			Code:         "1A2B3C4D",
			Status:       domain.RaffleStatusFinished,
			WinnerID:     &winnerID,
			WinnerNumber: &winnerNumber,
		}, nil)

		req := asAdmin(newRequest("POST", "/api/raffles/1A2B3C4D/draw", "", map[string]string{"code": "1A2B3C4D"}), 9)
		rr := httptest.NewRecorder()

		handler.Draw(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Non-host is forbidden", func(t *testing.T) {
		handler, m := NewMock(t)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.Actor{ID: 2}).Return(nil, domain.ErrUnauthorized)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/draw", "", map[string]string{"code": "1A2B3C4D"}), 2)
		rr := httptest.NewRecorder()

		handler.Draw(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("No sold numbers conflicts", func(t *testing.T) {
		handler, m := NewMock(t)
		m.drawService.EXPECT().Draw(gomock.Any(), "1A2B3C4D", drawservice.Actor{ID: 1}).Return(nil, domain.ErrNoSoldTickets)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/draw", "", map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Draw(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestCancelHandler(t *testing.T) {
	t.Run("Host cancels", func(t *testing.T) {
		handler, m := NewMock(t)
		m.drawService.EXPECT().Cancel(gomock.Any(), "1A2B3C4D", drawservice.Actor{ID: 1}).Return(nil)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/cancel", "", map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Cancel(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Finished raffle conflicts", func(t *testing.T) {
		handler, m := NewMock(t)
		m.drawService.EXPECT().Cancel(gomock.Any(), "1A2B3C4D", drawservice.Actor{ID: 1}).Return(domain.ErrRaffleNotActive)

		req := asUser(newRequest("POST", "/api/raffles/1A2B3C4D/cancel", "", map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.Cancel(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRequestReviewHandlers(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		handler, m := NewMock(t)
		m.purchaseService.EXPECT().Approve(gomock.Any(), 33, 1, false).Return(nil)

		req := asUser(newRequest("POST", "/api/requests/33/approve", "", map[string]string{"id": "33"}), 1)
		rr := httptest.NewRecorder()

		handler.ApproveRequest(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Approve unknown request", func(t *testing.T) {
		handler, m := NewMock(t)
		m.purchaseService.EXPECT().Approve(gomock.Any(), 33, 1, false).Return(domain.ErrRequestNotFound)

		req := asUser(newRequest("POST", "/api/requests/33/approve", "", map[string]string{"id": "33"}), 1)
		rr := httptest.NewRecorder()

		handler.ApproveRequest(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Approve already reviewed", func(t *testing.T) {
		handler, m := NewMock(t)
		m.purchaseService.EXPECT().Approve(gomock.Any(), 33, 1, false).Return(domain.ErrRequestNotPending)

		req := asUser(newRequest("POST", "/api/requests/33/approve", "", map[string]string{"id": "33"}), 1)
		rr := httptest.NewRecorder()

		handler.ApproveRequest(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Reject", func(t *testing.T) {
		handler, m := NewMock(t)
		m.purchaseService.EXPECT().Reject(gomock.Any(), 33, 1, false).Return(nil)

		req := asUser(newRequest("POST", "/api/requests/33/reject", "", map[string]string{"id": "33"}), 1)
		rr := httptest.NewRecorder()

		handler.RejectRequest(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := asUser(newRequest("POST", "/api/requests/zero/approve", "", map[string]string{"id": "zero"}), 1)
		rr := httptest.NewRecorder()

		handler.ApproveRequest(rr, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestListRequestsHandler(t *testing.T) {
	t.Run("Host lists requests", func(t *testing.T) {
		handler, m := NewMock(t)
		m.purchaseService.EXPECT().ListRequests(gomock.Any(), "1A2B3C4D", 1, false, "pending").Return([]domain.PurchaseRequest{
			{ID: 33, UserID: 2, Numbers: []int{1, 2}, Status: domain.RequestPending},
		}, nil)

		req := asUser(newRequest("GET", "/api/raffles/1A2B3C4D/requests?status=pending", "", map[string]string{"code": "1A2B3C4D"}), 1)
		rr := httptest.NewRecorder()

		handler.ListRequests(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.PurchaseRequestResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, 33, resp[0].ID)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		handler, m := NewMock(t)
		m.purchaseService.EXPECT().ListRequests(gomock.Any(), "1A2B3C4D", 2, false, "").Return(nil, domain.ErrUnauthorized)

		req := asUser(newRequest("GET", "/api/raffles/1A2B3C4D/requests", "", map[string]string{"code": "1A2B3C4D"}), 2)
		rr := httptest.NewRecorder()

		handler.ListRequests(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
