package controller

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/recipe-hub-backend/internal/command"
	"github.com/recipehub/recipe-hub-backend/internal/datasources/mocks"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithActor(actor *domain.User) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithActor(ctx, actor)
		return r.WithContext(ctx)
	}
}

func TestRatingCreate_ServeHTTP(t *testing.T) {
	actor := domain.User{ID: 7, Username: "rater"}
	recipe := domain.Recipe{ID: 3, Title: "Pizza Margherita"}

	newController := func(
		recipes *mocks.MockRecipeFetcher,
		existing *mocks.MockRatingByAuthorFetcher,
		creator *mocks.MockRatingCreator,
	) RatingCreate {
		return RatingCreate{Command: command.NewRateRecipe(recipes, existing, creator)}
	}

	doRequest := func(ctrl RatingCreate, body string, setupContext func(r *http.Request) *http.Request) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/recipes/3/difficulty-ratings/", strings.NewReader(body))
		req = setupContext(req)
		req = mux.SetURLVars(req, map[string]string{"recipe_id": "3"})
		rec := httptest.NewRecorder()
		ctrl.ServeHTTP(rec, req)
		return rec
	}

	t.Run("creates_rating", func(t *testing.T) {
		recipes := &mocks.MockRecipeFetcher{}
		existing := &mocks.MockRatingByAuthorFetcher{}
		creator := &mocks.MockRatingCreator{}

		recipes.On("FetchRecipe", mock.Anything, int64(3)).Return(recipe, nil)
		existing.On("FetchRatingByRecipeAndAuthor", mock.Anything, int64(3), int64(7)).
			Return(domain.DifficultyRating{}, domain.ErrNotFound)
		creator.On("CreateRating", mock.Anything, mock.Anything).
			Return(domain.DifficultyRating{ID: 1, RecipeID: 3, RatingAuthor: actor, Rating: 4}, nil)

		rec := doRequest(newController(recipes, existing, creator), `{"rating": 4}`, testContextWithActor(&actor))

		require.Equal(t, http.StatusCreated, rec.Code)

		var got domain.DifficultyRating
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 4, got.Rating)
		assert.Equal(t, "rater", got.RatingAuthor.Username)
	})

	t.Run("second_rating_is_conflict", func(t *testing.T) {
		recipes := &mocks.MockRecipeFetcher{}
		existing := &mocks.MockRatingByAuthorFetcher{}
		creator := &mocks.MockRatingCreator{}

		recipes.On("FetchRecipe", mock.Anything, int64(3)).Return(recipe, nil)
		existing.On("FetchRatingByRecipeAndAuthor", mock.Anything, int64(3), int64(7)).
			Return(domain.DifficultyRating{ID: 1, RecipeID: 3, RatingAuthor: actor, Rating: 2}, nil)

		rec := doRequest(newController(recipes, existing, creator), `{"rating": 5}`, testContextWithActor(&actor))

		require.Equal(t, http.StatusConflict, rec.Code)

		var body detailBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, domain.DuplicateRatingDetail, body.Detail)

		creator.AssertNotCalled(t, "CreateRating", mock.Anything, mock.Anything)
	})

	t.Run("anonymous_is_unauthorized", func(t *testing.T) {
		ctrl := newController(&mocks.MockRecipeFetcher{}, &mocks.MockRatingByAuthorFetcher{}, &mocks.MockRatingCreator{})

		rec := doRequest(ctrl, `{"rating": 4}`, testContext())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing_recipe", func(t *testing.T) {
		recipes := &mocks.MockRecipeFetcher{}
		recipes.On("FetchRecipe", mock.Anything, int64(3)).Return(domain.Recipe{}, domain.ErrNotFound)

		ctrl := newController(recipes, &mocks.MockRatingByAuthorFetcher{}, &mocks.MockRatingCreator{})

		rec := doRequest(ctrl, `{"rating": 4}`, testContextWithActor(&actor))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("out_of_range_ratings_rejected", func(t *testing.T) {
		for _, body := range []string{`{"rating": 0}`, `{"rating": 6}`, `{"rating": -1}`} {
			ctrl := newController(&mocks.MockRecipeFetcher{}, &mocks.MockRatingByAuthorFetcher{}, &mocks.MockRatingCreator{})

			rec := doRequest(ctrl, body, testContextWithActor(&actor))

			require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

			var fields map[string][]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&fields))
			assert.Contains(t, fields["rating"], "Rating must be between 1 and 5")
		}
	})

	t.Run("fractional_rating_rejected", func(t *testing.T) {
		ctrl := newController(&mocks.MockRecipeFetcher{}, &mocks.MockRatingByAuthorFetcher{}, &mocks.MockRatingCreator{})

		rec := doRequest(ctrl, `{"rating": 2.5}`, testContextWithActor(&actor))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string][]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&fields))
		assert.Contains(t, fields["rating"], "A valid integer is required.")
	})
}
