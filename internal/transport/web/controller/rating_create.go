package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/command"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RatingCreate struct {
	Command command.Command[command.RateRecipeRequest, domain.DifficultyRating]
}

func (c RatingCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		writeError(ctx, w, domain.ErrAuthenticationRequired)
		return
	}

	recipeID, err := pathID(r, "recipe_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var in domain.RatingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	rating, err := c.Command.Execute(ctx, command.RateRecipeRequest{
		RecipeID: recipeID,
		Actor:    *actor,
		Rating:   in.Rating,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, rating)
}
