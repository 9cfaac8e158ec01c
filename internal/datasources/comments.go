package datasources

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// CommentLister returns all comments on a recipe, newest first.
type CommentLister interface {
	ListRecipeComments(ctx context.Context, recipeID int64) ([]domain.Comment, error)
}

// CommentFetcher retrieves a single comment.
// Returns domain.ErrNotFound when no such comment exists.
type CommentFetcher interface {
	FetchComment(ctx context.Context, id int64) (domain.Comment, error)
}

// CommentCreator stores a new comment.
type CommentCreator interface {
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}

// CommentUpdater rewrites a comment's content.
type CommentUpdater interface {
	UpdateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}

// CommentDeleter removes a comment.
type CommentDeleter interface {
	DeleteComment(ctx context.Context, id int64) error
}

// CommentRepository combines all comment operations.
type CommentRepository interface {
	CommentLister
	CommentFetcher
	CommentCreator
	CommentUpdater
	CommentDeleter
}
