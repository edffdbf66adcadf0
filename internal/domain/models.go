package domain

import "time"

type Currency string

const (
	CurrencyFires Currency = "fires"
	CurrencyCoins Currency = "coins"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

type Wallet struct {
	ID          int   `db:"id"`
	UserID      int   `db:"user_id"`
	Fires       int64 `db:"fires"`
	Coins       int64 `db:"coins"`
	FiresEarned int64 `db:"fires_earned"`
	FiresSpent  int64 `db:"fires_spent"`
	CoinsEarned int64 `db:"coins_earned"`
	CoinsSpent  int64 `db:"coins_spent"`
}

// Balance returns the spendable amount for one currency.
func (w *Wallet) Balance(currency Currency) int64 {
	if currency == CurrencyCoins {
		return w.Coins
	}
	return w.Fires
}

type WalletTransaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Type          string    `db:"type"`
	Currency      Currency  `db:"currency"`
	Amount        int64     `db:"amount"`
	BalanceBefore int64     `db:"balance_before"`
	BalanceAfter  int64     `db:"balance_after"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	TxTypePurchase string = "purchase"
	TxTypePayout   string = "payout"
	TxTypeRefund   string = "refund"
	TxTypeTopup    string = "topup"
)

type Raffle struct {
	ID              int        `db:"id"`
	Code            string     `db:"code"`
	HostID          int        `db:"host_id"`
	Mode            string     `db:"mode"`
	NumbersRange    int        `db:"numbers_range"`
	PriceFires      int64      `db:"price_fires"`
	PriceCoins      int64      `db:"price_coins"`
	PotFires        int64      `db:"pot_fires"`
	PotCoins        int64      `db:"pot_coins"`
	Status          string     `db:"status"`
	DrawMode        string     `db:"draw_mode"`
	ScheduledDrawAt *time.Time `db:"scheduled_draw_at"`
	WinnerID        *int       `db:"winner_id"`
	WinnerNumber    *int       `db:"winner_number"`
	CreatedAt       time.Time  `db:"created_at"`
	StartedAt       *time.Time `db:"started_at"`
	EndedAt         *time.Time `db:"ended_at"`
}

const (
	RaffleModeFires string = "fires"
	RaffleModeCoins string = "coins"
	RaffleModePrize string = "prize"
)

const (
	RaffleStatusDraft     string = "draft"
	RaffleStatusPending   string = "pending"
	RaffleStatusActive    string = "active"
	RaffleStatusFinished  string = "finished"
	RaffleStatusCancelled string = "cancelled"
)

const (
	DrawModeAutomatic string = "automatic"
	DrawModeScheduled string = "scheduled"
	DrawModeManual    string = "manual"
)

// Currency returns the currency a raffle is denominated in, or false for
// prize-mode raffles which settle off-platform.
func (r *Raffle) Currency() (Currency, bool) {
	switch r.Mode {
	case RaffleModeFires:
		return CurrencyFires, true
	case RaffleModeCoins:
		return CurrencyCoins, true
	}
	return "", false
}

func (r *Raffle) UnitPrice() int64 {
	if r.Mode == RaffleModeCoins {
		return r.PriceCoins
	}
	return r.PriceFires
}

func (r *Raffle) Pot() int64 {
	if r.Mode == RaffleModeCoins {
		return r.PotCoins
	}
	return r.PotFires
}

type Ticket struct {
	ID         int        `db:"id"`
	RaffleID   int        `db:"raffle_id"`
	Idx        int        `db:"idx"`
	State      string     `db:"state"`
	OwnerID    *int       `db:"owner_id"`
	HoldToken  *string    `db:"hold_token"`
	ReservedAt *time.Time `db:"reserved_at"`
	SoldAt     *time.Time `db:"sold_at"`
}

const (
	TicketAvailable string = "available"
	TicketReserved  string = "reserved"
	TicketSold      string = "sold"
)

// ReleasedTicket identifies a reservation freed by the expiry sweep.
type ReleasedTicket struct {
	RaffleCode string
	Idx        int
}

type Participant struct {
	ID         int   `db:"id"`
	RaffleID   int   `db:"raffle_id"`
	UserID     int   `db:"user_id"`
	Numbers    []int `db:"numbers"`
	SpentFires int64 `db:"spent_fires"`
	SpentCoins int64 `db:"spent_coins"`
}

type PurchaseRequest struct {
	ID         int        `db:"id"`
	RaffleID   int        `db:"raffle_id"`
	UserID     int        `db:"user_id"`
	Numbers    []int      `db:"numbers"`
	Status     string     `db:"status"`
	Comment    string     `db:"comment"`
	CreatedAt  time.Time  `db:"created_at"`
	ReviewedAt *time.Time `db:"reviewed_at"`
}

const (
	RequestPending  string = "pending"
	RequestApproved string = "approved"
	RequestRejected string = "rejected"
)
