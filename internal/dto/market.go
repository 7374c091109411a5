package dto

import "time"

type PurchaseResponseDTO struct {
	RemainingCredits int64 `json:"remainingCredits"`
}

type PurchaseHistoryDTO struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title" example:"The Sleepy Comet"`
	Price     int64     `json:"price" example:"5"`
	CreatedAt time.Time `json:"createdAt"`
}

type SaleHistoryDTO struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title" example:"The Sleepy Comet"`
	Price     int64     `json:"price" example:"5"`
	CreatedAt time.Time `json:"createdAt"`
}
