package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 50
)

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("invalid page value [%d]", p)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return 0, 0, fmt.Errorf("invalid page size value [%d]", ps)
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

type paginatedResponse struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func paginate(r *http.Request, count int64, page, pageSize int, results any) paginatedResponse {
	resp := paginatedResponse{Count: count, Results: results}

	if int64(page)*int64(pageSize) < count {
		resp.Next = pageLink(r, page+1)
	}
	if page > 1 {
		resp.Previous = pageLink(r, page-1)
	}

	return resp
}

func pageLink(r *http.Request, page int) *string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	link := u.String()
	return &link
}
