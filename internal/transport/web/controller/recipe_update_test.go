package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/recipe-hub-backend/internal/datasources/mocks"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func TestRecipeUpdate_ServeHTTP(t *testing.T) {
	owner := domain.User{ID: 7, Username: "cook"}
	other := domain.User{ID: 8, Username: "passerby"}
	admin := domain.User{ID: 1, Username: "admin", IsStaff: true}

	stored := domain.Recipe{
		ID:           3,
		Title:        "Pizza Margherita",
		Description:  "Classic Neapolitan pizza",
		Ingredients:  "Flour, tomatoes, mozzarella, basil",
		Instructions: "Make dough, top, bake",
		CookingTime:  45,
		Author:       owner,
	}

	doRequest := func(
		ctrl RecipeUpdate, method, body string, setupContext func(r *http.Request) *http.Request,
	) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/recipes/3/", strings.NewReader(body))
		req = setupContext(req)
		req = mux.SetURLVars(req, map[string]string{"recipe_id": "3"})
		rec := httptest.NewRecorder()
		ctrl.ServeHTTP(rec, req)
		return rec
	}

	t.Run("owner_patch_merges_stored_values", func(t *testing.T) {
		fetcher := &mocks.MockRecipeFetcher{}
		updater := &mocks.MockRecipeUpdater{}

		fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(stored, nil)

		want := stored
		want.Title = "Pizza Marinara"
		updater.On("UpdateRecipe", mock.Anything, want).Return(want, nil)

		ctrl := RecipeUpdate{Fetcher: fetcher, Updater: updater}
		rec := doRequest(ctrl, http.MethodPatch, `{"title": "Pizza Marinara"}`, testContextWithActor(&owner))

		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Recipe
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Pizza Marinara", got.Title)
		assert.Equal(t, stored.Description, got.Description)

		updater.AssertExpectations(t)
	})

	t.Run("put_requires_full_body", func(t *testing.T) {
		fetcher := &mocks.MockRecipeFetcher{}
		fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(stored, nil)

		ctrl := RecipeUpdate{Fetcher: fetcher, Updater: &mocks.MockRecipeUpdater{}}
		rec := doRequest(ctrl, http.MethodPut, `{"title": "Pizza Marinara"}`, testContextWithActor(&owner))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string][]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&fields))
		assert.Contains(t, fields["description"], "This field may not be blank.")
	})

	t.Run("non_owner_is_forbidden", func(t *testing.T) {
		fetcher := &mocks.MockRecipeFetcher{}
		updater := &mocks.MockRecipeUpdater{}

		fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(stored, nil)

		ctrl := RecipeUpdate{Fetcher: fetcher, Updater: updater}
		rec := doRequest(ctrl, http.MethodPatch, `{"title": "Hijacked"}`, testContextWithActor(&other))

		require.Equal(t, http.StatusForbidden, rec.Code)

		var body detailBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "You do not have permission to perform this action.", body.Detail)

		updater.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything)
	})

	t.Run("admin_cannot_edit_others_recipes", func(t *testing.T) {
		fetcher := &mocks.MockRecipeFetcher{}
		fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(stored, nil)

		ctrl := RecipeUpdate{Fetcher: fetcher, Updater: &mocks.MockRecipeUpdater{}}
		rec := doRequest(ctrl, http.MethodPatch, `{"title": "Moderated"}`, testContextWithActor(&admin))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing_recipe", func(t *testing.T) {
		fetcher := &mocks.MockRecipeFetcher{}
		fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(domain.Recipe{}, domain.ErrNotFound)

		ctrl := RecipeUpdate{Fetcher: fetcher, Updater: &mocks.MockRecipeUpdater{}}
		rec := doRequest(ctrl, http.MethodPatch, `{"title": "Gone"}`, testContextWithActor(&owner))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative_cooking_time_rejected", func(t *testing.T) {
		fetcher := &mocks.MockRecipeFetcher{}
		fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(stored, nil)

		ctrl := RecipeUpdate{Fetcher: fetcher, Updater: &mocks.MockRecipeUpdater{}}
		rec := doRequest(ctrl, http.MethodPatch, `{"cooking_time": -5}`, testContextWithActor(&owner))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string][]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&fields))
		assert.Contains(t, fields["cooking_time"], "Cooking time must be positive")
	})
}

func TestRecipeDelete_ServeHTTP(t *testing.T) {
	owner := domain.User{ID: 7, Username: "cook"}
	other := domain.User{ID: 8, Username: "passerby"}
	admin := domain.User{ID: 1, Username: "admin", IsStaff: true}

	stored := domain.Recipe{ID: 3, Title: "Pizza Margherita", Author: owner}

	doRequest := func(ctrl RecipeDelete, setupContext func(r *http.Request) *http.Request) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/recipes/3/", nil)
		req = setupContext(req)
		req = mux.SetURLVars(req, map[string]string{"recipe_id": "3"})
		rec := httptest.NewRecorder()
		ctrl.ServeHTTP(rec, req)
		return rec
	}

	cases := []struct {
		name       string
		actor      *domain.User
		wantStatus int
		wantDelete bool
	}{
		{name: "owner_deletes", actor: &owner, wantStatus: http.StatusNoContent, wantDelete: true},
		{name: "admin_deletes", actor: &admin, wantStatus: http.StatusNoContent, wantDelete: true},
		{name: "non_owner_forbidden", actor: &other, wantStatus: http.StatusForbidden},
		{name: "anonymous_forbidden", actor: nil, wantStatus: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &mocks.MockRecipeFetcher{}
			deleter := &mocks.MockRecipeDeleter{}

			fetcher.On("FetchRecipe", mock.Anything, int64(3)).Return(stored, nil)
			if tc.wantDelete {
				deleter.On("DeleteRecipe", mock.Anything, int64(3)).Return(nil)
			}

			ctrl := RecipeDelete{Fetcher: fetcher, Deleter: deleter}
			rec := doRequest(ctrl, testContextWithActor(tc.actor))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantDelete {
				deleter.AssertExpectations(t)
			} else {
				deleter.AssertNotCalled(t, "DeleteRecipe", mock.Anything, mock.Anything)
			}
		})
	}
}
