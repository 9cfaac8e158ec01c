package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func selectRatings() *sqlbuilder.SelectBuilder {
	sb := newSelect(
		"dr.id", "dr.recipe_id", "dr.rating", "dr.created_at", "dr.updated_at",
		"u.id", "u.username", "u.email",
	)
	sb.From("difficulty_ratings dr")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "users u", "u.id = dr.rating_author_id")
	return sb
}

func scanRating(row interface{ Scan(...interface{}) error }) (domain.DifficultyRating, error) {
	var rating domain.DifficultyRating
	err := row.Scan(
		&rating.ID,
		&rating.RecipeID,
		&rating.Rating,
		&rating.CreatedAt,
		&rating.UpdatedAt,
		&rating.RatingAuthor.ID,
		&rating.RatingAuthor.Username,
		&rating.RatingAuthor.Email,
	)
	if err != nil {
		return domain.DifficultyRating{}, err
	}

	return rating, nil
}

func (r *Repository) ListRecipeRatings(ctx context.Context, recipeID int64) ([]domain.DifficultyRating, error) {
	sb := selectRatings()
	sb.Where(sb.Equal("dr.recipe_id", recipeID))
	sb.OrderBy("dr.created_at DESC", "dr.id DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running ratings query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ratings := []domain.DifficultyRating{}
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ratings: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ratings, nil
}

func (r *Repository) FetchRating(ctx context.Context, id int64) (domain.DifficultyRating, error) {
	sb := selectRatings()
	sb.Where(sb.Equal("dr.id", id))

	query, args := sb.Build()
	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DifficultyRating{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.DifficultyRating{}, fmt.Errorf("fetching rating: %w", err)
	}

	return rating, nil
}

func (r *Repository) FetchRatingByRecipeAndAuthor(
	ctx context.Context,
	recipeID, userID int64,
) (domain.DifficultyRating, error) {
	sb := selectRatings()
	sb.Where(sb.Equal("dr.recipe_id", recipeID), sb.Equal("dr.rating_author_id", userID))

	query, args := sb.Build()
	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DifficultyRating{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.DifficultyRating{}, fmt.Errorf("fetching rating by recipe and author: %w", err)
	}

	return rating, nil
}

func (r *Repository) CreateRating(ctx context.Context, rating domain.DifficultyRating) (domain.DifficultyRating, error) {
	ib := newInsert("difficulty_ratings", "recipe_id", "rating_author_id", "rating")
	ib.Values(rating.RecipeID, rating.RatingAuthor.ID, rating.Rating)

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// The unique key on (recipe_id, rating_author_id) catches racing
		// duplicate ratings that slip past the pre-insert check.
		if isDuplicateKey(err, "uq_ratings_recipe_author") {
			return domain.DifficultyRating{}, domain.ConflictError{Detail: domain.DuplicateRatingDetail}
		}
		return domain.DifficultyRating{}, fmt.Errorf("inserting rating: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.DifficultyRating{}, fmt.Errorf("reading inserted rating ID: %w", err)
	}

	return r.FetchRating(ctx, id)
}

func (r *Repository) UpdateRating(ctx context.Context, rating domain.DifficultyRating) (domain.DifficultyRating, error) {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("difficulty_ratings")
	ub.Set(ub.Assign("rating", rating.Rating))
	ub.Where(ub.Equal("id", rating.ID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.DifficultyRating{}, fmt.Errorf("updating rating: %w", err)
	}

	return r.FetchRating(ctx, rating.ID)
}

func (r *Repository) DeleteRating(ctx context.Context, id int64) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("difficulty_ratings")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting rating: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted rating count: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
