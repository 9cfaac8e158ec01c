package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func selectComments() *sqlbuilder.SelectBuilder {
	sb := newSelect(
		"c.id", "c.recipe_id", "c.content", "c.created_at", "c.updated_at",
		"u.id", "u.username", "u.email",
	)
	sb.From("comments c")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "users u", "u.id = c.author_id")
	sb.OrderBy("c.created_at DESC", "c.id DESC")
	return sb
}

func scanComment(row interface{ Scan(...interface{}) error }) (domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.ID,
		&comment.RecipeID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.Author.ID,
		&comment.Author.Username,
		&comment.Author.Email,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	return comment, nil
}

func (r *Repository) ListRecipeComments(ctx context.Context, recipeID int64) ([]domain.Comment, error) {
	sb := selectComments()
	sb.Where(sb.Equal("c.recipe_id", recipeID))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running comments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comments: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return comments, nil
}

func (r *Repository) FetchComment(ctx context.Context, id int64) (domain.Comment, error) {
	sb := selectComments()
	sb.Where(sb.Equal("c.id", id))

	query, args := sb.Build()
	comment, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("fetching comment: %w", err)
	}

	return comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	ib := newInsert("comments", "recipe_id", "author_id", "content")
	ib.Values(comment.RecipeID, comment.Author.ID, comment.Content)

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("reading inserted comment ID: %w", err)
	}

	return r.FetchComment(ctx, id)
}

func (r *Repository) UpdateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("comments")
	ub.Set(ub.Assign("content", comment.Content))
	ub.Where(ub.Equal("id", comment.ID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Comment{}, fmt.Errorf("updating comment: %w", err)
	}

	return r.FetchComment(ctx, comment.ID)
}

func (r *Repository) DeleteComment(ctx context.Context, id int64) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("comments")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted comment count: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
