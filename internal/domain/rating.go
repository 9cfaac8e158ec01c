package domain

import "time"

// DuplicateRatingDetail is returned whenever a user attempts to rate a recipe
// they have already rated, whether caught by the pre-insert check or by the
// storage-level unique index.
const DuplicateRatingDetail = "You have already given a difficulty rating for this recipe. " +
	"If you want to change your rating, update it."

// DifficultyRating is a single user's 1-5 difficulty score for a recipe.
// At most one rating exists per (recipe, rating_author) pair.
type DifficultyRating struct {
	ID           int64     `json:"id"`
	RecipeID     int64     `json:"-"`
	Rating       int       `json:"rating"`
	RatingAuthor User      `json:"rating_author"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (r DifficultyRating) RatingOwnerUserID() int64 {
	return r.RatingAuthor.ID
}
