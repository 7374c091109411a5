package dto

import "time"

type StoryOptionsDTO struct {
	Topic     string `json:"topic" example:"Space"`
	LengthMin int    `json:"lengthMin" example:"5"`
	Voice     string `json:"voice" example:"Female"`
	Music     string `json:"music" example:"Ambient"`
}

type GenerateStoryRequestDTO struct {
	Title   string          `json:"title" example:"The Sleepy Comet"`
	Prompt  string          `json:"prompt" example:"A comet who is afraid of the dark"`
	Options StoryOptionsDTO `json:"options"`
}

type GenerateStoryResponseDTO struct {
	StoryID          string `json:"storyId"`
	RemainingCredits int64  `json:"remainingCredits"`
}

type StoryResponseDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	AuthorName    string    `json:"authorName"`
	Topic         string    `json:"topic"`
	LengthMinutes int       `json:"lengthMin"`
	Voice         string    `json:"voice"`
	Music         string    `json:"music"`
	Status        string    `json:"status"`
	Visibility    string    `json:"visibility"`
	Text          *string   `json:"text"`
	AudioURL      *string   `json:"audioUrl"`
	CoverURL      *string   `json:"coverUrl"`
	Source        string    `json:"source"`
	SalesCount    int       `json:"salesCount"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type PublishStoryRequestDTO struct {
	Visibility string `json:"visibility" example:"public"`
}
