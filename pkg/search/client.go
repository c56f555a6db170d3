// Package search wraps the hosted search engine behind a small client
// interface so the sync pipeline and handlers never talk to the engine
// directly and tests can swap in a fake.
package search

import (
	"context"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
)

// IndexClient is the capability surface the rest of the service needs
// from the search engine. Collections are schemaless to callers beyond
// the fixed schemas in this package.
type IndexClient interface {
	// EnsureCollection creates the collection when it does not exist yet
	// and leaves an existing one untouched.
	EnsureCollection(ctx context.Context, schema *api.CollectionSchema) error

	// ResetCollection drops the collection if present and recreates it.
	ResetCollection(ctx context.Context, schema *api.CollectionSchema) error

	// ImportDocuments bulk-upserts documents; a document with an existing
	// id is fully replaced.
	ImportDocuments(ctx context.Context, collection string, documents []interface{}) error

	// UpsertDocument writes a single document.
	UpsertDocument(ctx context.Context, collection string, document interface{}) error

	// DeleteDocument removes a document by id. Deleting a missing
	// document is not an error.
	DeleteDocument(ctx context.Context, collection string, id string) error

	// Search runs a paginated free-text query against the collection.
	Search(ctx context.Context, collection string, query *Query) (*Result, error)
}

// Filter is one field:value clause of a server-side filter expression.
type Filter struct {
	Field string
	Value string
}

// Query describes a search request. Text defaults to the match-all
// query when empty; pagination falls back to page 1 with 10 hits.
type Query struct {
	Text    string
	QueryBy string
	Page    int
	PerPage int
	SortBy  string
	Filters []Filter
}

// FilterExpr joins the filter clauses with logical AND in the engine's
// expression syntax. Empty when there are no filters.
func (q *Query) FilterExpr() string {
	if len(q.Filters) == 0 {
		return ""
	}
	clauses := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		clauses = append(clauses, f.Field+":"+f.Value)
	}
	return strings.Join(clauses, " && ")
}

func (q *Query) text() string {
	if q.Text == "" {
		return "*"
	}
	return q.Text
}

func (q *Query) page() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

func (q *Query) perPage() int {
	if q.PerPage < 1 {
		return 10
	}
	return q.PerPage
}

// Result is the portable slice of a search response.
type Result struct {
	Hits         []map[string]interface{} `json:"hits"`
	Found        int                      `json:"found"`
	Page         int                      `json:"page"`
	PerPage      int                      `json:"per_page"`
	SearchTimeMs int                      `json:"search_time_ms"`
}
