package search

import (
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

// Collection names. car_models is derived catalog data and rebuilt on
// every sync; cars_for_sale holds user listings and is never dropped.
const (
	CollectionCarModels   = "car_models"
	CollectionCarsForSale = "cars_for_sale"
)

// CarModelsSchema is the catalog index: one document per sellable leaf
// configuration (trim, or model-year when trimless). Only title is
// queried; the id fields map hits back to relational rows.
func CarModelsSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: CollectionCarModels,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "model_id", Type: "string", Optional: pointer.True()},
			{Name: "trim_id", Type: "string", Optional: pointer.True()},
			{Name: "brand_id", Type: "int32", Optional: pointer.True()},
			{Name: "model_year_id", Type: "string", Optional: pointer.True()},
			{Name: "year", Type: "int32", Optional: pointer.True()},
			{Name: "title", Type: "string", Facet: pointer.True()},
		},
	}
}

// CarsForSaleSchema is the listings index: one document per listing,
// carrying the filterable/facetable display fields.
func CarsForSaleSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: CollectionCarsForSale,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "seller_id", Type: "int32", Facet: pointer.True()},
			{Name: "model_year_id", Type: "string", Optional: pointer.True()},
			{Name: "trim_id", Type: "string", Optional: pointer.True()},
			{Name: "fuel", Type: "string", Facet: pointer.True()},
			{Name: "title", Type: "string"},
			{Name: "price", Type: "float", Facet: pointer.True()},
			{Name: "condition", Type: "string", Facet: pointer.True()},
			{Name: "status", Type: "string", Facet: pointer.True()},
			{Name: "year", Type: "int32", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "color", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "province", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "thumbnail", Type: "string", Optional: pointer.True()},
			{Name: "transmission", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "body_type", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "drive", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "created_at", Type: "int64"},
		},
	}
}
