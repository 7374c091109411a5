package dto

import "time"

type BalanceResponseDTO struct {
	Credits int64 `json:"credits" example:"15"`
}

type TransactionResponseDTO struct {
	Type      string    `json:"type" example:"debit"`
	Amount    int64     `json:"amount" example:"5"`
	StoryID   *string   `json:"storyId,omitempty"`
	Title     string    `json:"title" example:"Story generation"`
	CreatedAt time.Time `json:"createdAt"`
}
