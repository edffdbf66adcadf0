package repo

import (
	"github.com/VictorSmolin/rafflehub/internal/pg"
	participantrepo "github.com/VictorSmolin/rafflehub/internal/repo/participant-repo"
	rafflerepo "github.com/VictorSmolin/rafflehub/internal/repo/raffle-repo"
	requestrepo "github.com/VictorSmolin/rafflehub/internal/repo/request-repo"
	ticketrepo "github.com/VictorSmolin/rafflehub/internal/repo/ticket-repo"
	userrepo "github.com/VictorSmolin/rafflehub/internal/repo/user-repo"
	walletrepo "github.com/VictorSmolin/rafflehub/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	RaffleRepo      *rafflerepo.Repository
	TicketRepo      *ticketrepo.Repository
	ParticipantRepo *participantrepo.Repository
	RequestRepo     *requestrepo.Repository
	WalletRepo      *walletrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		RaffleRepo:      rafflerepo.New(conn),
		TicketRepo:      ticketrepo.New(conn),
		ParticipantRepo: participantrepo.New(conn),
		RequestRepo:     requestrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
	}
}
