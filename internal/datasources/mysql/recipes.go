package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func selectRecipes() *sqlbuilder.SelectBuilder {
	sb := newSelect(
		"r.id", "r.title", "r.description", "r.ingredients", "r.instructions",
		"r.cooking_time", "r.created_at", "r.updated_at",
		"u.id", "u.username", "u.email",
		"(SELECT COUNT(*) FROM comments c WHERE c.recipe_id = r.id) AS comment_count",
		"(SELECT AVG(dr.rating) FROM difficulty_ratings dr WHERE dr.recipe_id = r.id) AS average_difficulty",
	)
	sb.From("recipes r")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "users u", "u.id = r.author_id")
	return sb
}

func scanRecipe(row interface{ Scan(...interface{}) error }) (domain.Recipe, error) {
	var recipe domain.Recipe
	var avg sql.NullFloat64
	err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.CookingTime,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
		&recipe.Author.ID,
		&recipe.Author.Username,
		&recipe.Author.Email,
		&recipe.CommentCount,
		&avg,
	)
	if err != nil {
		return domain.Recipe{}, err
	}

	if avg.Valid {
		rounded := domain.RoundAverageDifficulty(avg.Float64)
		recipe.AverageDifficulty = &rounded
	}
	recipe.Comments = []domain.Comment{}

	return recipe, nil
}

func (r *Repository) ListRecipes(
	ctx context.Context,
	options domain.RecipeListOptions,
) ([]domain.Recipe, error) {
	sb := selectRecipes()
	sb.OrderBy("r.created_at DESC", "r.id DESC")
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running recipes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipes := []domain.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recipes: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	if err := r.attachComments(ctx, recipes); err != nil {
		return nil, err
	}
	if err := r.attachUserRatings(ctx, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *Repository) TotalRecipes(ctx context.Context) (int64, error) {
	sb := newSelect("COUNT(*)")
	sb.From("recipes")

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}

	return count, nil
}

func (r *Repository) FetchRecipe(ctx context.Context, id int64) (domain.Recipe, error) {
	sb := selectRecipes()
	sb.Where(sb.Equal("r.id", id))

	query, args := sb.Build()
	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Recipe{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("fetching recipe: %w", err)
	}

	recipes := []domain.Recipe{recipe}
	if err := r.attachComments(ctx, recipes); err != nil {
		return domain.Recipe{}, err
	}
	if err := r.attachUserRatings(ctx, recipes); err != nil {
		return domain.Recipe{}, err
	}

	return recipes[0], nil
}

func (r *Repository) CreateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	ib := newInsert("recipes",
		"title", "description", "ingredients", "instructions", "cooking_time", "author_id")
	ib.Values(
		recipe.Title,
		recipe.Description,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.CookingTime,
		recipe.Author.ID,
	)

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("inserting recipe: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("reading inserted recipe ID: %w", err)
	}

	return r.FetchRecipe(ctx, id)
}

func (r *Repository) UpdateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("recipes")
	ub.Set(
		ub.Assign("title", recipe.Title),
		ub.Assign("description", recipe.Description),
		ub.Assign("ingredients", recipe.Ingredients),
		ub.Assign("instructions", recipe.Instructions),
		ub.Assign("cooking_time", recipe.CookingTime),
	)
	ub.Where(ub.Equal("id", recipe.ID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Recipe{}, fmt.Errorf("updating recipe: %w", err)
	}

	return r.FetchRecipe(ctx, recipe.ID)
}

func (r *Repository) DeleteRecipe(ctx context.Context, id int64) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom("recipes")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted recipe count: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// attachComments loads the comment lists for a batch of recipes in one query.
func (r *Repository) attachComments(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	sb := selectComments()
	sb.Where(sb.In("c.recipe_id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running recipe comments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byRecipe := make(map[int64][]domain.Comment, len(recipes))
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return fmt.Errorf("scanning recipe comments: %w", err)
		}
		byRecipe[comment.RecipeID] = append(byRecipe[comment.RecipeID], comment)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	for i := range recipes {
		if comments, ok := byRecipe[recipes[i].ID]; ok {
			recipes[i].Comments = comments
		}
	}

	return nil
}

// attachUserRatings fills in the requesting user's own rating per recipe.
// Anonymous requests leave the field null.
func (r *Repository) attachUserRatings(ctx context.Context, recipes []domain.Recipe) error {
	actor := domain.ActorFromContext(ctx)
	if actor == nil || len(recipes) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	sb := newSelect("recipe_id", "rating")
	sb.From("difficulty_ratings")
	sb.Where(sb.In("recipe_id", ids...), sb.Equal("rating_author_id", actor.ID))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running user ratings query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byRecipe := make(map[int64]int)
	for rows.Next() {
		var recipeID int64
		var rating int
		if err := rows.Scan(&recipeID, &rating); err != nil {
			return fmt.Errorf("scanning user ratings: %w", err)
		}
		byRecipe[recipeID] = rating
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	for i := range recipes {
		if rating, ok := byRecipe[recipes[i].ID]; ok {
			value := rating
			recipes[i].UserRating = &value
		}
	}

	return nil
}
