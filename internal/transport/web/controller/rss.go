package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Recipes         datasources.RecipeLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Recipe Hub Feed",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of the latest recipes shared on Recipe Hub",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	recipes, err := c.Recipes.ListRecipes(r.Context(), domain.RecipeListOptions{Page: 1, PageSize: 50})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch recipes for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, recipe := range recipes {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%d", recipe.ID),
			IsPermaLink: "false",
			Title:       recipe.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/recipes/%d/", c.FeedHostname, recipe.ID)},
			Description: recipe.Description,
			Author: &feeds.Author{
				Name: recipe.Author.Username,
			},
			Created: recipe.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
