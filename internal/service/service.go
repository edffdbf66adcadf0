package service

import (
	"github.com/VictorSmolin/rafflehub/internal/handlers/auth"
	"github.com/VictorSmolin/rafflehub/internal/handlers/raffles"
	"github.com/VictorSmolin/rafflehub/internal/handlers/wallet"

	pkgauth "github.com/VictorSmolin/rafflehub/pkg/auth"

	"github.com/VictorSmolin/rafflehub/internal/config"
	"github.com/VictorSmolin/rafflehub/internal/events"
	"github.com/VictorSmolin/rafflehub/internal/pg"
	"github.com/VictorSmolin/rafflehub/internal/repo"
	authservice "github.com/VictorSmolin/rafflehub/internal/service/authservice"
	drawservice "github.com/VictorSmolin/rafflehub/internal/service/drawservice"
	purchaseservice "github.com/VictorSmolin/rafflehub/internal/service/purchaseservice"
	raffleservice "github.com/VictorSmolin/rafflehub/internal/service/raffleservice"
	reservationservice "github.com/VictorSmolin/rafflehub/internal/service/reservationservice"
	walletservice "github.com/VictorSmolin/rafflehub/internal/service/walletservice"
)

type Services struct {
	AuthService        auth.Service
	WalletService      wallet.Service
	RaffleService      raffles.RaffleService
	ReservationService raffles.ReservationService
	PurchaseService    raffles.PurchaseService
	DrawService        raffles.DrawService
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, sink events.Sink) *Services {
	walletService := walletservice.New(repo.WalletRepo)
	reservationService := reservationservice.New(repo.RaffleRepo, repo.TicketRepo, txManager, sink, cfg.ReserveTTL, cfg.GuestHoldTTL)
	purchaseService := purchaseservice.New(repo.RaffleRepo, repo.TicketRepo, repo.ParticipantRepo, repo.RequestRepo, walletService, reservationService, txManager, sink)
	drawService := drawservice.New(repo.RaffleRepo, repo.TicketRepo, repo.ParticipantRepo, walletService, txManager, sink, cfg.PlatformUserID)
	raffleService := raffleservice.New(repo.RaffleRepo, repo.TicketRepo, repo.ParticipantRepo, txManager)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{}, txManager)

	return &Services{
		AuthService:        authService,
		WalletService:      walletService,
		RaffleService:      raffleService,
		ReservationService: reservationService,
		PurchaseService:    purchaseService,
		DrawService:        drawService,
	}
}
