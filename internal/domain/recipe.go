package domain

import (
	"math"
	"time"
)

type Recipe struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Ingredients       string    `json:"ingredients"`
	Instructions      string    `json:"instructions"`
	CookingTime       int       `json:"cooking_time"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Author            User      `json:"author"`
	Comments          []Comment `json:"comments"`
	CommentCount      int64     `json:"comment_count"`
	AverageDifficulty *float64  `json:"average_difficulty"`
	UserRating        *int      `json:"user_rating"`
}

func (r Recipe) OwnerUserID() int64 {
	return r.Author.ID
}

// RoundAverageDifficulty rounds a ratings mean to two decimal places for
// presentation, e.g. ratings [4,2,5] average to 3.67.
func RoundAverageDifficulty(v float64) float64 {
	return math.Round(v*100) / 100
}

type RecipeListOptions struct {
	Page, PageSize int
}
