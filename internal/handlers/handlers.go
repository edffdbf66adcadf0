package handlers

import (
	"net/http"

	_ "github.com/VictorSmolin/rafflehub/docs"
	"github.com/VictorSmolin/rafflehub/internal/events"
	authhandlers "github.com/VictorSmolin/rafflehub/internal/handlers/auth"
	raffleshandlers "github.com/VictorSmolin/rafflehub/internal/handlers/raffles"
	wallethandlers "github.com/VictorSmolin/rafflehub/internal/handlers/wallet"
	"github.com/VictorSmolin/rafflehub/internal/service"
	"github.com/VictorSmolin/rafflehub/pkg/auth"
	"github.com/VictorSmolin/rafflehub/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type RaffleHandler interface {
	CreateRaffle(w http.ResponseWriter, r *http.Request)
	ListRaffles(w http.ResponseWriter, r *http.Request)
	GetRaffle(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
	GetParticipants(w http.ResponseWriter, r *http.Request)
	Reserve(w http.ResponseWriter, r *http.Request)
	Release(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	Draw(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	RaffleHandler RaffleHandler

	hub     *events.Hub
	limiter *ratelimit.Limiter
}

func New(s *service.Services, hub *events.Hub, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService),
		RaffleHandler: raffleshandlers.New(s.RaffleService, s.ReservationService, s.PurchaseService, s.DrawService),
		hub:           hub,
		limiter:       limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
		})
	})

	r.Route("/api/raffles", func(r chi.Router) {
		r.Get("/", h.RaffleHandler.ListRaffles)
		r.Get("/{code}", h.RaffleHandler.GetRaffle)
		r.Get("/{code}/numbers", h.RaffleHandler.GetTickets)
		r.Get("/{code}/participants", h.RaffleHandler.GetParticipants)
		r.Get("/{code}/ws", func(w http.ResponseWriter, r *http.Request) {
			h.hub.ServeWS(w, r, chi.URLParam(r, "code"))
		})

		// Guests may hold a number while they sign up; everything past a
		// hold needs an account.
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuthMiddleware, h.limiter.Middleware)
			r.Post("/{code}/numbers/{idx}/reserve", h.RaffleHandler.Reserve)
			r.Post("/{code}/numbers/{idx}/release", h.RaffleHandler.Release)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/", h.RaffleHandler.CreateRaffle)
			r.Get("/{code}/requests", h.RaffleHandler.ListRequests)
			r.Post("/{code}/draw", h.RaffleHandler.Draw)
			r.Post("/{code}/cancel", h.RaffleHandler.Cancel)

			r.With(h.limiter.Middleware).Post("/{code}/purchase", h.RaffleHandler.Purchase)
		})
	})

	r.Route("/api/requests", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/{id}/approve", h.RaffleHandler.ApproveRequest)
		r.Post("/{id}/reject", h.RaffleHandler.RejectRequest)
	})

	return r
}
