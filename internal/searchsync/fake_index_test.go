package searchsync

import (
	"context"
	"errors"
	"sync"

	"carmarket-service/pkg/search"

	"github.com/typesense/typesense-go/v2/typesense/api"
)

var errImportRejected = errors.New("import rejected")

// fakeIndex is an in-memory IndexClient recording calls and failing on
// demand, keyed by collection name.
type fakeIndex struct {
	mu sync.Mutex

	resetErr         error
	ensureErr        error
	upsertErr        error
	importErr        error
	failFirstImports int // fail this many import calls, then succeed

	resets    []string
	ensures   []string
	imports   map[string][][]interface{}
	upserts   map[string][]interface{}
	deletes   map[string][]string
	searches  []search.Query
	searchRes *search.Result
	searchErr error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		imports: map[string][][]interface{}{},
		upserts: map[string][]interface{}{},
		deletes: map[string][]string{},
	}
}

func (f *fakeIndex) EnsureCollection(_ context.Context, schema *api.CollectionSchema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensures = append(f.ensures, schema.Name)
	return f.ensureErr
}

func (f *fakeIndex) ResetCollection(_ context.Context, schema *api.CollectionSchema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, schema.Name)
	return f.resetErr
}

func (f *fakeIndex) ImportDocuments(_ context.Context, collection string, documents []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFirstImports > 0 {
		f.failFirstImports--
		return errImportRejected
	}
	if f.importErr != nil {
		return f.importErr
	}
	f.imports[collection] = append(f.imports[collection], documents)
	return nil
}

func (f *fakeIndex) UpsertDocument(_ context.Context, collection string, document interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts[collection] = append(f.upserts[collection], document)
	return nil
}

func (f *fakeIndex) DeleteDocument(_ context.Context, collection string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes[collection] = append(f.deletes[collection], id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ string, query *search.Query) (*search.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, *query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.searchRes != nil {
		return f.searchRes, nil
	}
	return &search.Result{Page: query.Page, PerPage: query.PerPage}, nil
}

func (f *fakeIndex) upsertCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts[collection])
}

func (f *fakeIndex) deleteCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deletes[collection])
}
