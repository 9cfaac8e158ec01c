package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
	"github.com/recipehub/recipe-hub-backend/internal/command"
	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/ratelimit"
	"github.com/recipehub/recipe-hub-backend/internal/transport/web/controller"
)

func MakeRouter(
	users datasources.UserRepository,
	recipes datasources.RecipeRepository,
	comments datasources.CommentRepository,
	ratings datasources.RatingRepository,
	issuer *auth.TokenIssuer,
	limiter *ratelimit.Limiter,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)
	r.Use(rateLimitMiddleware(limiter))

	r.Handle("/auth/registration/", controller.Register{
		Command: command.NewRegisterUser(users, users),
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/auth/token/", controller.TokenObtain{
		Users:  users,
		Issuer: issuer,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/auth/token/refresh/", controller.TokenRefresh{
		Issuer: issuer,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/auth/user/", requireAuthMiddleware(controller.UserGet{})).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/", controller.RecipesList{
		Lister: recipes,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/", requireAuthMiddleware(controller.RecipeCreate{
		Creator: recipes,
	})).Methods(http.MethodPost)

	r.Handle("/recipes/{recipe_id}/", controller.RecipeGet{
		Fetcher: recipes,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/{recipe_id}/", requireAuthMiddleware(controller.RecipeUpdate{
		Fetcher: recipes,
		Updater: recipes,
	})).Methods(http.MethodPut, http.MethodPatch)

	r.Handle("/recipes/{recipe_id}/", requireAuthMiddleware(controller.RecipeDelete{
		Fetcher: recipes,
		Deleter: recipes,
	})).Methods(http.MethodDelete)

	r.Handle("/recipes/{recipe_id}/comments/", controller.CommentsList{
		Recipes:  recipes,
		Comments: comments,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/{recipe_id}/comments/", requireAuthMiddleware(controller.CommentCreate{
		Recipes: recipes,
		Creator: comments,
	})).Methods(http.MethodPost)

	r.Handle("/recipes/{recipe_id}/comments/{comment_id}/", controller.CommentGet{
		Fetcher: comments,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/{recipe_id}/comments/{comment_id}/", requireAuthMiddleware(controller.CommentUpdate{
		Fetcher: comments,
		Updater: comments,
	})).Methods(http.MethodPut, http.MethodPatch)

	r.Handle("/recipes/{recipe_id}/comments/{comment_id}/", requireAuthMiddleware(controller.CommentDelete{
		Fetcher: comments,
		Deleter: comments,
	})).Methods(http.MethodDelete)

	r.Handle("/recipes/{recipe_id}/difficulty-ratings/", controller.RatingsList{
		Recipes: recipes,
		Ratings: ratings,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/{recipe_id}/difficulty-ratings/", requireAuthMiddleware(controller.RatingCreate{
		Command: command.NewRateRecipe(recipes, ratings, ratings),
	})).Methods(http.MethodPost)

	r.Handle("/recipes/{recipe_id}/difficulty-ratings/{rating_id}/", controller.RatingGet{
		Fetcher: ratings,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/recipes/{recipe_id}/difficulty-ratings/{rating_id}/", requireAuthMiddleware(controller.RatingUpdate{
		Fetcher: ratings,
		Updater: ratings,
	})).Methods(http.MethodPut, http.MethodPatch)

	r.Handle("/recipes/{recipe_id}/difficulty-ratings/{rating_id}/", requireAuthMiddleware(controller.RatingDelete{
		Fetcher: ratings,
		Deleter: ratings,
	})).Methods(http.MethodDelete)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Recipes:         recipes,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
