// Package query turns article list parameters into a validated query plan.
//
// Sort columns and directions are resolved through fixed lookup tables, so the
// plan only ever carries identifiers defined in this package. Client input is
// never copied into a plan.
package query

import (
	"strings"

	"nc-news-api/internal/response"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"

	// CommentCountColumn is the alias of the aggregated comment count
	CommentCountColumn = "comment_count"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Params are the raw list parameters as received. Empty means absent.
type Params struct {
	SortBy string
	Order  string
	Topic  string
}

// Predicate is a single equality filter
type Predicate struct {
	Column string
	Value  string
}

// Plan is an immutable description of an article listing query
type Plan struct {
	Columns    []string
	Filter     *Predicate
	SortColumn string
	Direction  Direction
}

// Desc reports whether the plan sorts descending
func (p Plan) Desc() bool {
	return p.Direction == Descending
}

// sortColumns maps accepted sort_by values to the column the store sorts on
var sortColumns = map[string]string{
	"article_id":       "articles.article_id",
	"title":            "articles.title",
	"topic":            "articles.topic",
	"author":           "articles.author",
	"created_at":       "articles.created_at",
	"votes":            "articles.votes",
	"article_img_url":  "articles.article_img_url",
	CommentCountColumn: CommentCountColumn,
}

var directions = map[string]Direction{
	"asc":  Ascending,
	"desc": Descending,
}

// SummaryColumns is the list projection; it has no body
var SummaryColumns = []string{
	"articles.article_id",
	"articles.title",
	"articles.topic",
	"articles.author",
	"articles.created_at",
	"articles.votes",
	"articles.article_img_url",
}

// DetailColumns is the single-article projection
var DetailColumns = []string{
	"articles.article_id",
	"articles.title",
	"articles.topic",
	"articles.author",
	"articles.body",
	"articles.created_at",
	"articles.votes",
	"articles.article_img_url",
}

// SortableColumns returns the accepted sort_by values
func SortableColumns() []string {
	cols := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		cols = append(cols, k)
	}
	return cols
}

// Build validates params and returns a plan. Both lookups happen before any
// part of the plan is assembled.
func Build(p Params) (Plan, error) {
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return Plan{}, response.NewInvalidSortColumnError(p.SortBy)
	}

	order := p.Order
	if order == "" {
		order = DefaultOrder
	}
	dir, ok := directions[strings.ToLower(order)]
	if !ok {
		return Plan{}, response.NewInvalidOrderError(p.Order)
	}

	plan := Plan{
		Columns:    append([]string(nil), SummaryColumns...),
		SortColumn: column,
		Direction:  dir,
	}
	if p.Topic != "" {
		plan.Filter = &Predicate{Column: "topic", Value: p.Topic}
	}
	return plan, nil
}
