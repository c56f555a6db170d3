package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryFilterExpr(t *testing.T) {
	q := &Query{}
	require.Equal(t, "", q.FilterExpr())

	q.Filters = []Filter{{Field: "status", Value: "active"}}
	require.Equal(t, "status:active", q.FilterExpr())

	q.Filters = append(q.Filters, Filter{Field: "seller_id", Value: "42"})
	require.Equal(t, "status:active && seller_id:42", q.FilterExpr())
}

func TestQueryDefaults(t *testing.T) {
	q := &Query{}
	require.Equal(t, "*", q.text())
	require.Equal(t, 1, q.page())
	require.Equal(t, 10, q.perPage())

	q = &Query{Text: "vios", Page: 3, PerPage: 50}
	require.Equal(t, "vios", q.text())
	require.Equal(t, 3, q.page())
	require.Equal(t, 50, q.perPage())

	q = &Query{Page: -1, PerPage: 0}
	require.Equal(t, 1, q.page())
	require.Equal(t, 10, q.perPage())
}

func TestCollectionSchemas(t *testing.T) {
	cm := CarModelsSchema()
	require.Equal(t, CollectionCarModels, cm.Name)
	require.NotEmpty(t, cm.Fields)

	cfs := CarsForSaleSchema()
	require.Equal(t, CollectionCarsForSale, cfs.Name)
	require.NotEmpty(t, cfs.Fields)

	names := make(map[string]bool, len(cfs.Fields))
	for _, f := range cfs.Fields {
		names[f.Name] = true
	}
	for _, required := range []string{"seller_id", "status", "title", "price", "created_at"} {
		require.True(t, names[required], required)
	}
}
