package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	RecipeID  int64     `json:"recipe"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Comment) OwnerUserID() int64 {
	return c.Author.ID
}
