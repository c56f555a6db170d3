package searchsync

import (
	"context"
	"strconv"
	"time"

	"carmarket-service/internal/catalog"
	"carmarket-service/internal/model"
	"carmarket-service/pkg/search"

	"go.uber.org/zap"
)

// ListingDocument is the cars_for_sale index record for one listing.
type ListingDocument struct {
	ID           string  `json:"id"`
	SellerID     uint    `json:"seller_id"`
	ModelYearID  string  `json:"model_year_id"`
	TrimID       *string `json:"trim_id"`
	Fuel         string  `json:"fuel"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	Condition    string  `json:"condition"`
	Status       string  `json:"status"`
	Year         *int    `json:"year,omitempty"`
	Color        *string `json:"color,omitempty"`
	Province     *string `json:"province,omitempty"`
	Thumbnail    *string `json:"thumbnail,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	BodyType     *string `json:"body_type,omitempty"`
	Drive        *string `json:"drive,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

// ListingSearch describes a listings-index query. Filtering is
// restricted to seller id and status.
type ListingSearch struct {
	Text      string
	SellerID  *uint
	Status    string
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

// ListingIndexer mirrors listing writes into the cars_for_sale index.
// Mirroring is best-effort: operations go through a bounded in-process
// outbox and never fail or delay the caller. The relational row stays
// authoritative.
type ListingIndexer struct {
	index  search.IndexClient
	lookup *catalog.LookupService
	outbox *outbox
	log    *zap.Logger
}

func NewListingIndexer(index search.IndexClient, lookup *catalog.LookupService, log *zap.Logger) *ListingIndexer {
	ix := &ListingIndexer{
		index:  index,
		lookup: lookup,
		log:    log,
	}
	ix.outbox = newOutbox(defaultOutboxSize, ix.apply, log)
	return ix
}

// Start launches the outbox drain goroutine. It stops when ctx is
// cancelled; queued operations not yet applied are lost.
func (ix *ListingIndexer) Start(ctx context.Context) {
	ix.outbox.start(ctx)
}

// IndexListing enqueues an upsert for a created or updated listing.
// Enrichment is fetched synchronously; its failure only degrades the
// document and is logged, never surfaced.
func (ix *ListingIndexer) IndexListing(ctx context.Context, listing *model.Listing) {
	doc := buildListingDocument(listing)
	ix.enrich(ctx, &doc, listing)

	if !ix.outbox.enqueue(indexOp{kind: opUpsert, doc: doc}) {
		ix.log.Warn("listing index outbox full, dropping upsert",
			zap.String("listing_id", doc.ID))
	}
}

// RemoveListing enqueues an index delete for a soft-deleted listing.
func (ix *ListingIndexer) RemoveListing(id uint) {
	docID := strconv.FormatUint(uint64(id), 10)
	if !ix.outbox.enqueue(indexOp{kind: opDelete, id: docID}) {
		ix.log.Warn("listing index outbox full, dropping delete",
			zap.String("listing_id", docID))
	}
}

// SearchListings queries the listings index by title with seller and
// status filters joined by logical AND.
func (ix *ListingIndexer) SearchListings(ctx context.Context, req *ListingSearch) (*search.Result, error) {
	var filters []search.Filter
	if req.SellerID != nil {
		filters = append(filters, search.Filter{
			Field: "seller_id",
			Value: strconv.FormatUint(uint64(*req.SellerID), 10),
		})
	}
	if req.Status != "" {
		filters = append(filters, search.Filter{Field: "status", Value: req.Status})
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := req.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	return ix.index.Search(ctx, search.CollectionCarsForSale, &search.Query{
		Text:    req.Text,
		QueryBy: "title",
		Page:    req.Page,
		PerPage: req.PerPage,
		SortBy:  sortBy + ":" + sortOrder,
		Filters: filters,
	})
}

// enrich merges the denormalized display fields from the catalog into
// the document. The trim-level row wins when the listing has a trim.
func (ix *ListingIndexer) enrich(ctx context.Context, doc *ListingDocument, listing *model.Listing) {
	if ix.lookup == nil {
		return
	}
	detail, err := ix.lookup.CarDetailByYearAndTrim(ctx, listing.ModelYearID, listing.TrimID)
	if err != nil {
		ix.log.Warn("catalog enrichment failed, indexing without display fields",
			zap.String("listing_id", doc.ID),
			zap.String("model_year_id", listing.ModelYearID),
			zap.Error(err))
		return
	}

	doc.Transmission = detail.Transmission
	doc.BodyType = detail.BodyType
	doc.Drive = detail.Drive
}

func (ix *ListingIndexer) apply(ctx context.Context, op indexOp) error {
	switch op.kind {
	case opUpsert:
		// The listings collection is lazily ensured, never dropped: it
		// holds user data, not derived catalog data.
		if err := ix.index.EnsureCollection(ctx, search.CarsForSaleSchema()); err != nil {
			return err
		}
		return ix.index.UpsertDocument(ctx, search.CollectionCarsForSale, op.doc)
	case opDelete:
		return ix.index.DeleteDocument(ctx, search.CollectionCarsForSale, op.id)
	}
	return nil
}

func buildListingDocument(listing *model.Listing) ListingDocument {
	createdAt := listing.CreatedAt.Unix()
	if listing.CreatedAt.IsZero() {
		createdAt = time.Now().Unix()
	}

	return ListingDocument{
		ID:          strconv.FormatUint(uint64(listing.ID), 10),
		SellerID:    listing.SellerID,
		ModelYearID: listing.ModelYearID,
		TrimID:      listing.TrimID,
		Fuel:        listing.Fuel,
		Title:       listing.Title,
		Price:       listing.Price,
		Condition:   string(listing.Condition),
		Status:      string(listing.Status),
		Year:        listing.Year,
		Color:       listing.Color,
		Province:    listing.Province,
		Thumbnail:   listing.Thumbnail,
		CreatedAt:   createdAt,
	}
}
