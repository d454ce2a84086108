package controllers

import (
	"net/http"
	"strings"

	"github.com/oumar782/Jessback/api/validators"
	"github.com/oumar782/Jessback/pkg/pagination"
)

// listBasics carries the query inputs shared by every list endpoint.
// Clamping happens at the service layer; here we only parse.
type listBasics struct {
	Pagination pagination.Params
	Search     string
	SortBy     string
	SortAsc    bool
}

func parseListBasics(r *http.Request) (listBasics, error) {
	page, err := validators.ParseQueryInt(r, "page", 1)
	if err != nil {
		return listBasics{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit)
	if err != nil {
		return listBasics{}, err
	}

	query := r.URL.Query()
	return listBasics{
		Pagination: pagination.Params{Page: page, Limit: limit},
		Search:     strings.TrimSpace(query.Get("search")),
		SortBy:     strings.TrimSpace(query.Get("sortBy")),
		SortAsc:    strings.EqualFold(strings.TrimSpace(query.Get("order")), "asc"),
	}, nil
}
