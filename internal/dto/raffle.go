package dto

import "time"

type CreateRaffleRequestDTO struct {
	Mode            string     `json:"mode" example:"fires"`
	NumbersRange    int        `json:"numbers_range" example:"10"`
	PriceFires      int64      `json:"price_fires,omitempty" example:"5"`
	PriceCoins      int64      `json:"price_coins,omitempty" example:"0"`
	DrawMode        string     `json:"draw_mode" example:"manual"`
	ScheduledDrawAt *time.Time `json:"scheduled_draw_at,omitempty"`
}

type RaffleResponseDTO struct {
	Code            string     `json:"code" example:"1A2B3C4D"`
	HostID          int        `json:"host_id" example:"1"`
	Mode            string     `json:"mode" example:"fires"`
	NumbersRange    int        `json:"numbers_range" example:"10"`
	PriceFires      int64      `json:"price_fires" example:"5"`
	PriceCoins      int64      `json:"price_coins" example:"0"`
	PotFires        int64      `json:"pot_fires" example:"15"`
	PotCoins        int64      `json:"pot_coins" example:"0"`
	Status          string     `json:"status" example:"active"`
	DrawMode        string     `json:"draw_mode" example:"manual"`
	ScheduledDrawAt *time.Time `json:"scheduled_draw_at,omitempty"`
	WinnerID        *int       `json:"winner_id,omitempty"`
	WinnerNumber    *int       `json:"winner_number,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

type TicketResponseDTO struct {
	Idx     int    `json:"idx" example:"7"`
	State   string `json:"state" example:"available"`
	OwnerID *int   `json:"owner_id,omitempty"`
}

type ReserveResponseDTO struct {
	Idx       int    `json:"idx" example:"7"`
	HoldToken string `json:"hold_token" example:"9f2c1e9a-0b87-4b79-bb6e-2f90b4f0a6af"`
}

type ReleaseRequestDTO struct {
	HoldToken string `json:"hold_token,omitempty"`
}

type PurchaseRequestDTO struct {
	Numbers []int  `json:"numbers" example:"1,2,3"`
	Comment string `json:"comment,omitempty" example:"paid via bank transfer"`
}

type PurchaseResponseDTO struct {
	Numbers   []int  `json:"numbers"`
	TotalCost int64  `json:"total_cost,omitempty" example:"15"`
	Currency  string `json:"currency,omitempty" example:"fires"`
	Pending   bool   `json:"pending" example:"false"`
	RequestID int    `json:"request_id,omitempty"`
}

type ParticipantResponseDTO struct {
	UserID     int   `json:"user_id" example:"2"`
	Numbers    []int `json:"numbers"`
	SpentFires int64 `json:"spent_fires" example:"15"`
	SpentCoins int64 `json:"spent_coins" example:"0"`
}

type PurchaseRequestResponseDTO struct {
	ID        int       `json:"id" example:"3"`
	UserID    int       `json:"user_id" example:"2"`
	Numbers   []int     `json:"numbers"`
	Status    string    `json:"status" example:"pending"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DrawResponseDTO struct {
	Code         string `json:"code" example:"1A2B3C4D"`
	WinnerID     int    `json:"winner_id" example:"2"`
	WinnerNumber int    `json:"winner_number" example:"7"`
	Status       string `json:"status" example:"finished"`
}
