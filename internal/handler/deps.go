package handler

import (
	"carmarket-service/internal/catalog"
	"carmarket-service/internal/searchsync"

	"gorm.io/gorm"
)

// Deps bundles the shared dependencies handlers are constructed with.
type Deps struct {
	DB       *gorm.DB
	Lookup   *catalog.LookupService
	Indexer  *searchsync.ListingIndexer
	Pipeline *searchsync.Pipeline
}
