package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"carmarket-service/pkg/config"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"go.uber.org/zap"
)

// TypesenseClient implements IndexClient against a Typesense node.
type TypesenseClient struct {
	client *typesense.Client
	log    *zap.Logger
}

var _ IndexClient = (*TypesenseClient)(nil)

// NewTypesenseClient builds a client from configuration. The connection
// is lazy; a bad address only surfaces on the first call.
func NewTypesenseClient(cfg *config.TypesenseConfig, log *zap.Logger) *TypesenseClient {
	return &TypesenseClient{
		client: typesense.NewClient(
			typesense.WithServer(cfg.URL()),
			typesense.WithAPIKey(cfg.APIKey),
			typesense.WithConnectionTimeout(cfg.ConnectionTimeout),
		),
		log: log,
	}
}

// IsNotFound reports whether err is the engine's 404 response.
func IsNotFound(err error) bool {
	var httpErr *typesense.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}

func (t *TypesenseClient) EnsureCollection(ctx context.Context, schema *api.CollectionSchema) error {
	_, err := t.client.Collection(schema.Name).Retrieve(ctx)
	if err == nil {
		t.log.Debug("collection already exists", zap.String("collection", schema.Name))
		return nil
	}
	if !IsNotFound(err) {
		return fmt.Errorf("checking collection %q: %w", schema.Name, err)
	}

	t.log.Info("collection not found, creating", zap.String("collection", schema.Name))
	if _, err := t.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("creating collection %q: %w", schema.Name, err)
	}
	return nil
}

func (t *TypesenseClient) ResetCollection(ctx context.Context, schema *api.CollectionSchema) error {
	if _, err := t.client.Collection(schema.Name).Delete(ctx); err != nil {
		// A missing collection is the expected case on first run.
		if !IsNotFound(err) {
			return fmt.Errorf("deleting collection %q: %w", schema.Name, err)
		}
	} else {
		t.log.Info("collection deleted before re-creation", zap.String("collection", schema.Name))
	}

	if _, err := t.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("creating collection %q: %w", schema.Name, err)
	}
	t.log.Info("collection created", zap.String("collection", schema.Name))
	return nil
}

func (t *TypesenseClient) ImportDocuments(ctx context.Context, collection string, documents []interface{}) error {
	if len(documents) == 0 {
		return nil
	}

	params := &api.ImportDocumentsParams{
		Action: pointer.String("upsert"),
	}
	responses, err := t.client.Collection(collection).Documents().Import(ctx, documents, params)
	if err != nil {
		return fmt.Errorf("importing into %q: %w", collection, err)
	}

	rejected := 0
	for _, r := range responses {
		if !r.Success {
			rejected++
			t.log.Warn("document rejected during import",
				zap.String("collection", collection),
				zap.String("error", r.Error))
		}
	}
	if rejected > 0 {
		return fmt.Errorf("import into %q rejected %d of %d documents", collection, rejected, len(documents))
	}
	return nil
}

func (t *TypesenseClient) UpsertDocument(ctx context.Context, collection string, document interface{}) error {
	if _, err := t.client.Collection(collection).Documents().Upsert(ctx, document); err != nil {
		return fmt.Errorf("upserting into %q: %w", collection, err)
	}
	return nil
}

func (t *TypesenseClient) DeleteDocument(ctx context.Context, collection string, id string) error {
	_, err := t.client.Collection(collection).Document(id).Delete(ctx)
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("deleting %q from %q: %w", id, collection, err)
	}
	return nil
}

func (t *TypesenseClient) Search(ctx context.Context, collection string, query *Query) (*Result, error) {
	params := &api.SearchCollectionParams{
		Q:       pointer.String(query.text()),
		QueryBy: pointer.String(query.QueryBy),
		Page:    pointer.Int(query.page()),
		PerPage: pointer.Int(query.perPage()),
	}
	if expr := query.FilterExpr(); expr != "" {
		params.FilterBy = pointer.String(expr)
	}
	if query.SortBy != "" {
		params.SortBy = pointer.String(query.SortBy)
	}

	res, err := t.client.Collection(collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", collection, err)
	}

	result := &Result{
		Hits:    []map[string]interface{}{},
		Page:    query.page(),
		PerPage: query.perPage(),
	}
	if res.Found != nil {
		result.Found = *res.Found
	}
	if res.Page != nil {
		result.Page = *res.Page
	}
	if res.SearchTimeMs != nil {
		result.SearchTimeMs = *res.SearchTimeMs
	}
	if res.Hits != nil {
		for _, hit := range *res.Hits {
			if hit.Document != nil {
				result.Hits = append(result.Hits, *hit.Document)
			}
		}
	}
	return result, nil
}
